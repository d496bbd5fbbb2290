package main

import "testing"

func Test_literals(t *testing.T) {
	forthTestCases{
		forthTest("single").eval("7").expectStack(7),
		forthTest("negative").eval("-13").expectStack(-13),
		forthTest("explicit plus sign").eval("+5").expectStack(5),
		forthTest("several in order").eval("1 2 3").expectStack(1, 2, 3),
		forthTest("zero").eval("0 -0").expectStack(0, 0),
		forthTest("trailing garbage is not a literal").eval("12x").expectUnknownWord("12x"),
		forthTest("hex is not a literal").eval("0x10").expectUnknownWord("0x10"),
	}.run(t)
}

func Test_stack_words(t *testing.T) {
	forthTestCases{
		forthTest("dup").eval("1 dup").expectStack(1, 1),
		forthTest("dup underflow").eval("dup").expectError(ErrEmptyStack).expectStack(),
		forthTest("?dup nonzero").eval("5 ?dup").expectStack(5, 5),
		forthTest("?dup zero").eval("0 ?dup").expectStack(0),
		forthTest("?dup underflow").eval("?dup").expectError(ErrEmptyStack),
		forthTest("drop").eval("1 2 drop").expectStack(1),
		forthTest("drop underflow").eval("drop").expectError(ErrEmptyStack),
		forthTest("swap").eval("1 2 swap").expectStack(2, 1),
		forthTest("swap underflow").eval("1 swap").expectError(ErrEmptyStack).expectStack(1),
		forthTest("over").eval("1 2 over").expectStack(1, 2, 1),
		forthTest("over underflow").eval("1 over").expectError(ErrEmptyStack),
		forthTest("rot").eval("1 2 3 rot").expectStack(2, 3, 1),
		forthTest("rot underflow").eval("1 2 rot").expectError(ErrEmptyStack).expectStack(1, 2),
	}.run(t)
}

func Test_arithmetic(t *testing.T) {
	forthTestCases{
		forthTest("add").eval("3 4 +").expectStack(7),
		forthTest("sub").eval("10 3 -").expectStack(7),
		forthTest("mul").eval("6 7 *").expectStack(42),
		forthTest("div").eval("7 2 /").expectStack(3),
		forthTest("div truncates toward zero").eval("-7 2 /").expectStack(-3),
		forthTest("div by zero").eval("5 0 /").expectError(ErrDivideByZero),
		forthTest("add underflow").eval("1 +").expectError(ErrEmptyStack).expectStack(1),
		forthTest("operand order").eval("1 10 3 -").expectStack(1, 7),
	}.run(t)
}

func Test_printing(t *testing.T) {
	forthTestCases{
		forthTest("dot").eval("7 .").expectOutput("7 ").expectStack(),
		forthTest("dot negative").eval("-42 .").expectOutput("-42 "),
		forthTest("dot underflow").eval(".").expectError(ErrEmptyStack).expectOutput(""),
		forthTest("cr").eval("7 . cr").expectOutput("7 \n"),
		forthTest("dot consumes in order").eval("1 2 . .").expectOutput("2 1 ").expectStack(),
		forthTest("show stack").eval("1 2 3 .S").expectOutput("<3> 1 2 3\n").expectStack(1, 2, 3),
		forthTest("show empty stack").eval(".S").expectOutput("<0>\n"),
	}.run(t)
}

// The one operation the interpreter must fail gracefully on: "." against an
// empty stack returns an error but leaves the instance usable.
func Test_dot_recoverable(t *testing.T) {
	f, out := newTestForth(t)
	err := f.Eval(".")
	assertErrIs(t, err, ErrEmptyStack)
	if err := f.Eval("1 ."); err != nil {
		t.Fatalf("instance unusable after recoverable error: %v", err)
	}
	if got := out.String(); got != "1 " {
		t.Errorf("expected output %q, got %q", "1 ", got)
	}
}

func Test_aliases(t *testing.T) {
	forthTestCases{
		forthTest("plus is +").eval("3 4 plus").expectStack(7),
		forthTest("alias and origin agree").eval("1 2 + 1 2 plus").expectStack(3, 3),
		forthTest(".s is .S").eval("5 .s").expectOutput("<1> 5\n"),
		forthTest("words is .D").eval("words").expectDefined("words"),
	}.run(t)
}

func Test_unknown_word(t *testing.T) {
	forthTestCases{
		forthTest("top level").eval("foo").expectUnknownWord("foo").expectStack(),
		forthTest("stack untouched before failure").
			eval("1 2 foo").expectUnknownWord("foo").expectStack(1, 2),
	}.run(t)
}
