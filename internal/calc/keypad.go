package calc

// ActionKind distinguishes literal input keys from command keys.
type ActionKind int

const (
	// ActionInput carries a literal expression character in Value.
	ActionInput ActionKind = iota
	// ActionCommand carries a command name in Value.
	ActionCommand
)

// Variant selects the visual treatment of a keypad key. It is presentation
// metadata only and never influences a transition.
type Variant int

const (
	VariantDigit Variant = iota
	VariantOperator
	VariantCommand
	VariantEquals
)

// Action is one key of the fixed 20-key input surface.
type Action struct {
	Label   string
	Value   string
	Kind    ActionKind
	Variant Variant
	Wide    bool
}

// Command names carried by command actions.
const (
	CmdClear   = "clear"
	CmdDelete  = "delete"
	CmdEquals  = "equals"
	CmdNegate  = "negate"
	CmdPercent = "percent"
)

// KeypadColumns is the width of the keypad grid.
const KeypadColumns = 4

// Keypad is the input surface in layout order, four keys per row, with the
// zero key spanning two columns.
var Keypad = []Action{
	{Label: "C", Value: CmdClear, Kind: ActionCommand, Variant: VariantCommand},
	{Label: "+/-", Value: CmdNegate, Kind: ActionCommand, Variant: VariantCommand},
	{Label: "%", Value: CmdPercent, Kind: ActionCommand, Variant: VariantCommand},
	{Label: "÷", Value: "/", Kind: ActionInput, Variant: VariantOperator},
	{Label: "7", Value: "7", Kind: ActionInput, Variant: VariantDigit},
	{Label: "8", Value: "8", Kind: ActionInput, Variant: VariantDigit},
	{Label: "9", Value: "9", Kind: ActionInput, Variant: VariantDigit},
	{Label: "×", Value: "*", Kind: ActionInput, Variant: VariantOperator},
	{Label: "4", Value: "4", Kind: ActionInput, Variant: VariantDigit},
	{Label: "5", Value: "5", Kind: ActionInput, Variant: VariantDigit},
	{Label: "6", Value: "6", Kind: ActionInput, Variant: VariantDigit},
	{Label: "-", Value: "-", Kind: ActionInput, Variant: VariantOperator},
	{Label: "1", Value: "1", Kind: ActionInput, Variant: VariantDigit},
	{Label: "2", Value: "2", Kind: ActionInput, Variant: VariantDigit},
	{Label: "3", Value: "3", Kind: ActionInput, Variant: VariantDigit},
	{Label: "+", Value: "+", Kind: ActionInput, Variant: VariantOperator},
	{Label: "⌫", Value: CmdDelete, Kind: ActionCommand, Variant: VariantCommand},
	{Label: "0", Value: "0", Kind: ActionInput, Variant: VariantDigit, Wide: true},
	{Label: ".", Value: ".", Kind: ActionInput, Variant: VariantDigit},
	{Label: "=", Value: CmdEquals, Kind: ActionCommand, Variant: VariantEquals},
}

// ActionByValue looks up a keypad action by its value. The second return is
// false when no key carries the value.
func ActionByValue(value string) (Action, bool) {
	for _, a := range Keypad {
		if a.Value == value {
			return a, true
		}
	}
	return Action{}, false
}
