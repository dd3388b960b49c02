package mux_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/anoideaopen/entrypoint/core/readers"
	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/anoideaopen/entrypoint/core/routing/mux"
	"github.com/anoideaopen/entrypoint/mock"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

type principalKey struct{}

func newTransferEntryPoint(t *testing.T, rec *mock.Recorder) *routing.EntryPoint {
	t.Helper()

	return routing.MustNewEntryPoint(
		"Transfer",
		"moves funds between accounts",
		[][]routing.Signature{
			{
				{Name: "caller", TypeLabel: "principal", Doc: "authenticated caller",
					Reader: readers.FromContext(principalKey{})},
				{Name: "to", TypeLabel: "string", Reader: readers.String()},
				{Name: "amount", TypeLabel: "bigint", Reader: readers.BigInt()},
			},
			{
				{Name: "memo", TypeLabel: "string", Reader: readers.String(),
					Default: func(any) (any, error) { return "", nil }},
			},
		},
		rec.Handler(),
	)
}

func newBalanceEntryPoint(t *testing.T, rec *mock.Recorder) *routing.EntryPoint {
	t.Helper()

	return routing.MustNewEntryPoint(
		"Balance",
		"reads the account balance",
		[][]routing.Signature{{
			{Name: "account", TypeLabel: "string", Reader: readers.String()},
		}},
		rec.Handler(),
	)
}

func TestNewRouter(t *testing.T) {
	rec := mock.NewRecorder(t)

	transfer := newTransferEntryPoint(t, rec)
	balance := newBalanceEntryPoint(t, rec)

	router, err := mux.NewRouter(transfer, balance)
	require.NoError(t, err)

	got, err := router.Resolve("Transfer")
	require.NoError(t, err)
	require.Same(t, transfer, got)

	_, err = router.Resolve("Burn")
	require.ErrorIs(t, err, mux.ErrUnsupportedEntryPoint)
	require.ErrorContains(t, err, "Burn")
}

func TestNewRouterRejectsDuplicates(t *testing.T) {
	rec := mock.NewRecorder(t)

	_, err := mux.NewRouter(
		newBalanceEntryPoint(t, rec),
		newBalanceEntryPoint(t, rec),
	)

	require.ErrorIs(t, err, mux.ErrEntryPointAlreadyDefined)
	require.ErrorContains(t, err, "Balance")
}

func TestNewRouterRejectsNil(t *testing.T) {
	rec := mock.NewRecorder(t)

	_, err := mux.NewRouter(newBalanceEntryPoint(t, rec), nil)

	require.ErrorIs(t, err, mux.ErrNilEntryPoint)
}

func TestMustNewRouterPanics(t *testing.T) {
	rec := mock.NewRecorder(t)

	require.Panics(t, func() {
		mux.MustNewRouter(
			newBalanceEntryPoint(t, rec),
			newBalanceEntryPoint(t, rec),
		)
	})
}

func TestRouterInvoke(t *testing.T) {
	rec := mock.NewRecorder(t).Returns("100")

	router := mux.MustNewRouter(newBalanceEntryPoint(t, rec))

	got, err := router.Invoke(context.Background(), "Balance", nil,
		mock.RawStrings(map[string]string{"account": "acc-1"}))
	require.NoError(t, err)
	require.Equal(t, "100", got)
	require.Equal(t, []any{"acc-1"}, rec.LastCall().Args)

	_, err = router.Invoke(context.Background(), "Burn", nil)
	require.ErrorIs(t, err, mux.ErrUnsupportedEntryPoint)

	// Engine outcomes pass through the router untouched.
	_, err = router.Invoke(context.Background(), "Balance", nil)
	require.ErrorIs(t, err, routing.ErrMismatchedArguments)
}

func TestRouterEntryPointsSorted(t *testing.T) {
	rec := mock.NewRecorder(t)

	router := mux.MustNewRouter(
		newTransferEntryPoint(t, rec),
		newBalanceEntryPoint(t, rec),
	)

	eps := router.EntryPoints()
	require.Len(t, eps, 2)
	require.Equal(t, "Balance", eps[0].Name())
	require.Equal(t, "Transfer", eps[1].Name())
}

func TestRouterDescribe(t *testing.T) {
	rec := mock.NewRecorder(t)

	router := mux.MustNewRouter(
		newTransferEntryPoint(t, rec),
		newBalanceEntryPoint(t, rec),
	)

	data, err := json.MarshalIndent(router.Describe(), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "describe", data)
}
