/* Package main: goforth -- a minimal threaded FORTH

goforth is a small FORTH-like interpreter: a dictionary of named executable
words, an integer data stack, and a compile/execute loop that resolves each
whitespace-delimited token against the dictionary.

Words come in three kinds.  Primitives are the fixed builtins registered at
construction (stack shufflers, arithmetic, printing, the compiler trigger ':').
Literals are synthesized on the fly whenever a token parses as a signed
integer; running one pushes its value.  Compiled words are produced by colon
definitions:

	: square dup * ;

Between ':' and ';' each token is resolved and, if ordinary, appended to the
new word's deferred body.  Immediate words are the interesting exception: they
run during compilation instead of being compiled, which is how compile-time
effects like the '\' line comment work.  The resulting word binds its body by
value -- redefining a name later shadows it for new input without rebinding
words compiled earlier.

The interpreter instance owns its dictionary, stack, and pending input queue;
nothing is global, and evaluation is single threaded and synchronous.  Pending
input persists across Eval calls, so a definition begun in one chunk can be
finished by a later one.  Errors -- unknown words, stack underflow, division
by zero, malformed definitions -- abort the current Eval call and are returned
to the host; 'bye' surfaces as an ExitError for the host to act on rather than
killing the process from inside a word.

Section 1, the word model and dictionary: see word.go

Section 2, resolution and compilation: see resolve.go and compile.go

Section 3, the evaluate loop and builtins: see eval.go and prim.go

*/
package main
