package dispatch

import (
	"context"
	"testing"

	"github.com/anoideaopen/vmbind/core/descriptor"
	"github.com/anoideaopen/vmbind/core/metadata"
	"github.com/anoideaopen/vmbind/core/refs"
	"github.com/anoideaopen/vmbind/core/resolve"
	"github.com/anoideaopen/vmbind/core/runtime"
	"github.com/anoideaopen/vmbind/mock"
	"github.com/stretchr/testify/require"
)

const calcClass = "com/example/Calc"

func calcRegistry(t *testing.T) *metadata.Registry {
	t.Helper()

	voidRet := descriptor.Return(descriptor.Primitive(descriptor.KindVoid))
	class := metadata.NewClass(calcClass,
		metadata.WithConstructor(),
		metadata.WithConstructor(descriptor.Param(descriptor.Primitive(descriptor.KindInt))),
		metadata.WithMethod("m",
			descriptor.NewOverload(voidRet, descriptor.Param(descriptor.Primitive(descriptor.KindInt))),
			descriptor.NewOverload(voidRet, descriptor.Param(
				descriptor.Object(descriptor.StringClass()),
				descriptor.StringOwned(),
				descriptor.StringView(),
			)),
		),
		metadata.WithMethod("close",
			descriptor.NewOverload(voidRet),
		),
	)

	registry, err := metadata.NewRegistry(class)
	require.NoError(t, err)

	return registry
}

func TestRouterCheck(t *testing.T) {
	router := NewRouter(calcRegistry(t), mock.NewRuntime(), RouterConfig{})
	ctx := context.Background()

	require.NoError(t, router.Check(ctx, calcClass, "m", runtime.Int(1)))
	require.NoError(t, router.Check(ctx, calcClass, "m", runtime.StringView("s")))
	require.NoError(t, router.Check(ctx, calcClass, "close"))

	err := router.Check(ctx, calcClass, "m", runtime.Int(1), runtime.Int(2))
	require.ErrorIs(t, err, resolve.ErrNoViableOverload)

	err = router.Check(ctx, calcClass, "missing", runtime.Int(1))
	require.ErrorIs(t, err, ErrMethodNotFound)

	err = router.Check(ctx, "com/example/Unknown", "m", runtime.Int(1))
	require.ErrorIs(t, err, metadata.ErrClassNotFound)
}

func TestRouterLoaderGate(t *testing.T) {
	router := NewRouter(calcRegistry(t), mock.NewRuntime(), RouterConfig{
		Loader: metadata.NewSetLoader(nil, "com/example/Other"),
	})

	err := router.Check(context.Background(), calcClass, "m", runtime.Int(1))
	require.ErrorIs(t, err, ErrClassNotSupported)
}

func TestRouterConstruct(t *testing.T) {
	rt := mock.NewRuntime()
	router := NewRouter(calcRegistry(t), rt, RouterConfig{})
	ctx := context.Background()

	ref, err := router.Construct(ctx, calcClass, runtime.Int(42))
	require.NoError(t, err)
	require.Equal(t, calcClass, ref.Class)
	require.Equal(t, descriptor.ShapeLocal, ref.Shape)

	calls := rt.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, mock.CallRecord{Class: calcClass, Method: "<init>", Overload: 1, Permutation: 0}, calls[0])

	_, err = router.Construct(ctx, calcClass, runtime.Double(1))
	require.ErrorIs(t, err, resolve.ErrNoViableOverload)
}

func TestRouterInvokeSelectsPermutation(t *testing.T) {
	rt := mock.NewRuntime()
	rt.RegisterMethod(calcClass, "m", func(_ *mock.Object, sel runtime.Selection, args []runtime.Value) (runtime.Value, error) {
		// The dispatcher hands the invoker the decoded representation per
		// parameter along with the indices.
		require.Len(t, args, 1)
		require.Len(t, sel.Reps, 1)
		return nil, nil
	})

	router := NewRouter(calcRegistry(t), rt, RouterConfig{})
	ctx := context.Background()

	recv, err := router.Construct(ctx, calcClass)
	require.NoError(t, err)

	_, err = router.Invoke(ctx, recv, "m", runtime.StringView("abc"))
	require.NoError(t, err)

	_, err = router.Invoke(ctx, recv, "m", runtime.Int(7))
	require.NoError(t, err)

	calls := rt.Calls()
	require.Len(t, calls, 3)

	// String view hits the second overload's second permutation; int hits
	// the first overload.
	require.Equal(t, mock.CallRecord{Class: calcClass, Method: "m", Overload: 1, Permutation: 1}, calls[1])
	require.Equal(t, mock.CallRecord{Class: calcClass, Method: "m", Overload: 0, Permutation: 0}, calls[2])
}

func TestRouterInvokeDisabledMethod(t *testing.T) {
	rt := mock.NewRuntime()
	router := NewRouter(calcRegistry(t), rt, RouterConfig{
		DisabledMethods: []string{"close"},
	})
	ctx := context.Background()

	recv, err := router.Construct(ctx, calcClass)
	require.NoError(t, err)

	_, err = router.Invoke(ctx, recv, "close")
	require.ErrorIs(t, err, ErrMethodDisabled)

	// Check agrees with Invoke on disabled methods.
	require.ErrorIs(t, router.Check(ctx, calcClass, "close"), ErrMethodDisabled)
}

func TestRouterInvokeUnknownReceiverClass(t *testing.T) {
	router := NewRouter(calcRegistry(t), mock.NewRuntime(), RouterConfig{})

	_, err := router.Invoke(context.Background(), refs.Ref{Class: "com/example/Unknown"}, "m", runtime.Int(1))
	require.ErrorIs(t, err, metadata.ErrClassNotFound)
}

func TestRouterClasses(t *testing.T) {
	router := NewRouter(calcRegistry(t), mock.NewRuntime(), RouterConfig{})
	require.Equal(t, []string{calcClass}, router.Classes())
}
