package ast

// Action identifies one of the robot's actuator statements.
type Action int

const (
	ActMove Action = iota
	ActWait
	ActTurnL
	ActTurnR
	ActTakeFuel
	ActTurnAround
	ActShieldOn
	ActShieldOff
)

var actionNames = [...]string{
	ActMove:       "move",
	ActWait:       "wait",
	ActTurnL:      "turnL",
	ActTurnR:      "turnR",
	ActTakeFuel:   "takeFuel",
	ActTurnAround: "turnAround",
	ActShieldOn:   "shieldOn",
	ActShieldOff:  "shieldOff",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "action(?)"
	}
	return actionNames[a]
}

// TakesArg reports whether the action accepts an optional argument.
// Only move and wait do.
func (a Action) TakesArg() bool { return a == ActMove || a == ActWait }

// Sensor identifies one of the robot's read-only sensors.
type Sensor int

const (
	SenFuelLeft Sensor = iota
	SenOppLR
	SenOppFB
	SenNumBarrels
	SenBarrelLR
	SenBarrelFB
	SenWallDist
)

var sensorNames = [...]string{
	SenFuelLeft:   "fuelLeft",
	SenOppLR:      "oppLR",
	SenOppFB:      "oppFB",
	SenNumBarrels: "numBarrels",
	SenBarrelLR:   "barrelLR",
	SenBarrelFB:   "barrelFB",
	SenWallDist:   "wallDist",
}

func (s Sensor) String() string {
	if s < 0 || int(s) >= len(sensorNames) {
		return "sensor(?)"
	}
	return sensorNames[s]
}

// RelOp is a relational operator of a comparison condition.
type RelOp int

const (
	OpLt RelOp = iota
	OpGt
	OpEq
)

var relOpNames = [...]string{OpLt: "lt", OpGt: "gt", OpEq: "eq"}

func (o RelOp) String() string {
	if o < 0 || int(o) >= len(relOpNames) {
		return "relop(?)"
	}
	return relOpNames[o]
}

// ArithOp is an arithmetic operator of a binary expression.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

var arithOpNames = [...]string{OpAdd: "add", OpSub: "sub", OpMul: "mul", OpDiv: "div"}

func (o ArithOp) String() string {
	if o < 0 || int(o) >= len(arithOpNames) {
		return "op(?)"
	}
	return arithOpNames[o]
}

// Keywords lists the reserved words that introduce statements, clauses
// and logical conditions.
var Keywords = []string{"loop", "while", "if", "elif", "else", "and", "or", "not"}

// ActionNames returns the action names in declaration order.
func ActionNames() []string { return append([]string(nil), actionNames[:]...) }

// SensorNames returns the sensor names in declaration order.
func SensorNames() []string { return append([]string(nil), sensorNames[:]...) }

// RelOpNames returns the relational operator names.
func RelOpNames() []string { return append([]string(nil), relOpNames[:]...) }

// ArithOpNames returns the arithmetic operator names.
func ArithOpNames() []string { return append([]string(nil), arithOpNames[:]...) }

// LookupAction resolves an action name.
func LookupAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// LookupSensor resolves a sensor name.
func LookupSensor(name string) (Sensor, bool) {
	for i, n := range sensorNames {
		if n == name {
			return Sensor(i), true
		}
	}
	return 0, false
}

// LookupRelOp resolves a relational operator name.
func LookupRelOp(name string) (RelOp, bool) {
	for i, n := range relOpNames {
		if n == name {
			return RelOp(i), true
		}
	}
	return 0, false
}

// LookupArithOp resolves an arithmetic operator name.
func LookupArithOp(name string) (ArithOp, bool) {
	for i, n := range arithOpNames {
		if n == name {
			return ArithOp(i), true
		}
	}
	return 0, false
}
