package engine

import "strconv"

// Op identifies the operation that produced a Value in the computation
// graph. Leaf values carry OpLeaf (the empty string).
//
// The tag is display-oriented: subtraction and division never appear,
// because they are lowered to add-of-negation and multiply-of-inverse
// at construction time. Power nodes carry their exponent in the tag
// (e.g. "^2") since the exponent is a plain number, not a graph node.
type Op string

const (
	// OpLeaf marks a value created directly from a number.
	OpLeaf Op = ""
	// OpAdd marks a value produced by addition.
	OpAdd Op = "+"
	// OpMul marks a value produced by multiplication.
	OpMul Op = "*"
	// OpPow marks a value produced by exponentiation with a constant.
	// The full tag includes the exponent, see powOp.
	OpPow Op = "^"
	// OpSigmoid marks a value produced by the sigmoid activation.
	OpSigmoid Op = "sigmoid"
	// OpReLU marks a value produced by the ReLU activation.
	OpReLU Op = "relu"
)

// powOp builds the display tag for a power node, e.g. "^2" or "^-1".
func powOp(exponent float64) Op {
	return OpPow + Op(strconv.FormatFloat(exponent, 'g', -1, 64))
}

// IsLeaf reports whether the tag marks a leaf (input or constant).
func (op Op) IsLeaf() bool {
	return op == OpLeaf
}
