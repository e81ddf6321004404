package typechecker

import "testing"

func TestContractClausesAccepted(t *testing.T) {
	src := `
fn divide(a: Float, b: Float) -> Float
  requires b != 0.0
  ensures result > 0.0 || result <= 0.0
{
  a / b
}
`
	wantClean(t, checkSource(t, src))
}

func TestRequiresMustBeBool(t *testing.T) {
	src := `
fn scale(f: Float) -> Float
  requires f
{
  f * 2.0
}
`
	wantError(t, checkSource(t, src), "requires clause of function 'scale' is Float, expected Bool")
}

func TestEnsuresMustBeBool(t *testing.T) {
	src := `
fn bump(n: Int) -> Int
  ensures result + 1
{
  n
}
`
	wantError(t, checkSource(t, src), "ensures clause of function 'bump' is Int, expected Bool")
}

func TestEnsuresSeesResultAndOldState(t *testing.T) {
	src := `
fn deposit(balance: Float, amount: Float) -> Float
  requires amount > 0.0
  ensures result >= old(balance)
{
  balance + amount
}
`
	wantClean(t, checkSource(t, src))
}

func TestResultCarriesDeclaredReturnType(t *testing.T) {
	src := `
fn greet(name: String) -> String
  ensures result == "hello"
{
  "hello"
}
`
	wantClean(t, checkSource(t, src))
}

func TestOldOutsideEnsuresIsJustAName(t *testing.T) {
	src := `
let v = old(3)
let n: Int = v
`
	wantClean(t, checkSource(t, src))
}

func TestInvariantSeesFields(t *testing.T) {
	src := `
struct Account { balance: Float, owner: String }
impl Account {
  invariant balance >= 0.0
  fn deposit(self, amount: Float) -> Float {
    self.balance + amount
  }
}
`
	wantClean(t, checkSource(t, src))
}

func TestInvariantMustBeBool(t *testing.T) {
	src := `
struct Account { balance: Float, owner: String }
impl Account {
  invariant owner
}
`
	wantError(t, checkSource(t, src), "invariant clause of impl 'Account' is String, expected Bool")
}

func TestContractsAreNeverSilentlyDropped(t *testing.T) {
	src := `
fn clamp(n: Int, lo: Int, hi: Int) -> Int
  requires lo <= hi
  requires n + lo
  ensures result >= lo
  ensures result * 2
{
  n
}
`
	diags := checkSource(t, src)
	wantError(t, diags, "requires clause of function 'clamp' is Int, expected Bool")
	wantError(t, diags, "ensures clause of function 'clamp' is Int, expected Bool")
	if len(errorsOf(diags)) != 2 {
		t.Fatalf("expected both bad clauses reported, got %+v", diags)
	}
}
