package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/store"
)

func TestMatcher_RejectsValueFieldOutsideAttributeContext(t *testing.T) {
	m := ast.Cmp(ast.EQ, ast.F(ast.FieldValue), ast.Lit(sysval.NewInt(1)))
	err := Matcher(Context{ObjectKind: store.KindHost}, m)
	require.Error(t, err)
}

func TestMatcher_AllowsValueFieldOnAttribute(t *testing.T) {
	m := ast.Cmp(ast.EQ, ast.F(ast.FieldValue), ast.Lit(sysval.NewInt(1)))
	err := Matcher(Context{ObjectKind: store.KindAttribute}, m)
	require.NoError(t, err)
}

func TestMatcher_RejectsAnyOverAttributeValue(t *testing.T) {
	// any(attribute.value) = 1 — attribute.value is a scalar, dynamic
	// expression, not an iterable child set, so ANY over it is rejected.
	m := ast.Any(ast.F(ast.FieldValue), ast.Cmp(ast.EQ, ast.Elem{}, ast.Lit(sysval.NewInt(1))))
	err := Matcher(Context{ObjectKind: store.KindAttribute}, m)
	require.Error(t, err)
}

func TestMatcher_RejectsNestedIterators(t *testing.T) {
	inner := ast.Any(ast.Children(store.KindAttribute), ast.IsNull(ast.F(ast.FieldValue)))
	outer := ast.Any(ast.Children(store.KindService), inner)
	err := Matcher(Context{ObjectKind: store.KindHost}, outer)
	require.Error(t, err)
}

func TestMatcher_AllowsAnyOverServiceAttributes(t *testing.T) {
	inner := ast.IsNull(ast.F(ast.FieldValue))
	m := ast.Any(ast.Children(store.KindAttribute), inner)
	err := Matcher(Context{ObjectKind: store.KindService}, m)
	require.NoError(t, err)
}

func TestMatcher_AllowsAnyOverBackends(t *testing.T) {
	m := ast.Any(ast.F(ast.FieldBackend), ast.Cmp(ast.EQ, ast.Elem{}, ast.Lit(sysval.NewString("x"))))
	err := Matcher(Context{ObjectKind: store.KindHost}, m)
	require.NoError(t, err)
}

func TestMatcher_RejectsElemOutsideIteration(t *testing.T) {
	m := ast.Cmp(ast.EQ, ast.Elem{}, ast.Lit(sysval.NewString("x")))
	err := Matcher(Context{ObjectKind: store.KindHost}, m)
	require.Error(t, err)
}

func TestMatcher_RejectsNonIterableSource_NamesTheField(t *testing.T) {
	m := ast.Any(ast.F(ast.FieldName), ast.IsNull(ast.Elem{}))
	err := Matcher(Context{ObjectKind: store.KindHost}, m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "name")
}

func TestMatcher_RejectsMismatchedCompareTags(t *testing.T) {
	m := ast.Cmp(ast.EQ, ast.F(ast.FieldName), ast.Lit(sysval.NewInt(1)))
	err := Matcher(Context{ObjectKind: store.KindHost}, m)
	require.Error(t, err)
}

func TestMatcher_AllowsNumericCrossComparison(t *testing.T) {
	m := ast.Cmp(ast.LT, ast.Lit(sysval.NewInt(1)), ast.Lit(sysval.NewDecimal(1.5)))
	err := Matcher(Context{ObjectKind: store.KindHost}, m)
	require.NoError(t, err)
}

func TestMatcher_INRequiresArrayRHS(t *testing.T) {
	m := ast.Cmp(ast.IN, ast.F(ast.FieldName), ast.Lit(sysval.NewString("x")))
	err := Matcher(Context{ObjectKind: store.KindHost}, m)
	require.Error(t, err)
}

func TestMatcher_RegexRequiresRegexOrStringRHS(t *testing.T) {
	m := ast.Cmp(ast.REGEXMatch, ast.F(ast.FieldName), ast.Lit(sysval.NewInt(1)))
	err := Matcher(Context{ObjectKind: store.KindHost}, m)
	require.Error(t, err)
}

func TestMatcher_IsTrueRequiresIntegerOperand(t *testing.T) {
	m := ast.Unary{Op: ast.ISTRUE, Operand: ast.F(ast.FieldName)}
	err := Matcher(Context{ObjectKind: store.KindHost}, m)
	require.Error(t, err)
}

func TestFetch_HostMustNotTakeName(t *testing.T) {
	err := Fetch(ast.Fetch{Kind: store.KindHost, Host: "web01", Name: "anything"})
	require.Error(t, err)
}

func TestFetch_ServiceRequiresName(t *testing.T) {
	err := Fetch(ast.Fetch{Kind: store.KindService, Host: "web01"})
	require.Error(t, err)
}

func TestFetch_ValidHostFetch(t *testing.T) {
	err := Fetch(ast.Fetch{Kind: store.KindHost, Host: "web01"})
	require.NoError(t, err)
}

func TestStore_HostOpRejectsExtraFields(t *testing.T) {
	err := Store(ast.StoreStmt{Op: ast.StoreHostOp, Host: "web01", Service: "nginx"})
	require.Error(t, err)
}

func TestStore_ServiceAttributeRequiresServiceAndKey(t *testing.T) {
	err := Store(ast.StoreStmt{Op: ast.StoreServiceAttributeOp, Host: "web01", Service: "nginx", Key: "version"})
	require.NoError(t, err)

	err = Store(ast.StoreStmt{Op: ast.StoreServiceAttributeOp, Host: "web01", Key: "version"})
	require.Error(t, err)
}

func TestStore_ServiceAttributeRejectsMetric(t *testing.T) {
	err := Store(ast.StoreStmt{
		Op:      ast.StoreServiceAttributeOp,
		Host:    "web01",
		Service: "nginx",
		Metric:  "cpu.load",
		Key:     "version",
	})
	require.Error(t, err)
}

func TestTimeseries_RequiresEndAfterStart(t *testing.T) {
	err := Timeseries(ast.Timeseries{Host: "web01", Metric: "cpu.load", Start: 100, End: 100})
	require.Error(t, err)

	err = Timeseries(ast.Timeseries{Host: "web01", Metric: "cpu.load", Start: 100, End: 200})
	require.NoError(t, err)
}
