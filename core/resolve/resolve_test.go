package resolve

import (
	"testing"

	"github.com/anoideaopen/vmbind/core/descriptor"
	"github.com/stretchr/testify/require"
)

func voidReturn() descriptor.ReturnDescriptor {
	return descriptor.Return(descriptor.Primitive(descriptor.KindVoid))
}

func intOverload() descriptor.Overload {
	return descriptor.NewOverload(voidReturn(), descriptor.Param(descriptor.Primitive(descriptor.KindInt)))
}

func stringOverload() descriptor.Overload {
	return descriptor.NewOverload(
		voidReturn(),
		descriptor.Param(
			descriptor.Object(descriptor.StringClass()),
			descriptor.StringOwned(),
			descriptor.StringView(),
		),
	)
}

func TestResolveEmptyOverloadSetNeverMatches(t *testing.T) {
	require.Equal(t, NoMatch, Resolve(nil, nil))
	require.Equal(t, NoMatch, Resolve(nil, []descriptor.TypeTag{descriptor.Primitive(descriptor.KindInt)}))
	require.False(t, Resolve(nil, nil).Selected())
}

func TestResolveArityGate(t *testing.T) {
	overloads := []descriptor.Overload{intOverload()}

	testCases := []struct {
		name string
		args []descriptor.TypeTag
	}{
		{
			name: "no arguments",
			args: nil,
		},
		{
			name: "too many arguments of the right type",
			args: []descriptor.TypeTag{
				descriptor.Primitive(descriptor.KindInt),
				descriptor.Primitive(descriptor.KindInt),
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, NoMatch, Resolve(overloads, testCase.args))
		})
	}
}

func TestResolveZeroParameterOverload(t *testing.T) {
	overloads := []descriptor.Overload{descriptor.NewOverload(voidReturn())}

	require.Equal(t, Result{Overload: 0, Permutation: 0}, Resolve(overloads, nil))
	require.Equal(t, NoMatch, Resolve(overloads, []descriptor.TypeTag{descriptor.Primitive(descriptor.KindInt)}))
}

// Ties break purely by declaration order: with two viable overloads the
// lower index wins, never the "most specific" one, and reversing the
// declaration order flips which overload that is. The two overloads here
// are viable for the same args but reach the int argument at different
// permutation indices, so the permutation reveals which one was picked.
func TestResolveFirstMatchDeterminism(t *testing.T) {
	a := descriptor.NewOverload(voidReturn(), descriptor.Param(
		descriptor.Primitive(descriptor.KindInt),
		descriptor.Primitive(descriptor.KindLong),
		descriptor.Primitive(descriptor.KindInt),
	))
	b := descriptor.NewOverload(voidReturn(), descriptor.Param(descriptor.Primitive(descriptor.KindInt)))

	args := []descriptor.TypeTag{descriptor.Primitive(descriptor.KindInt)}

	forward := Resolve([]descriptor.Overload{a, b}, args)
	require.Equal(t, Result{Overload: 0, Permutation: 1}, forward)

	reversed := Resolve([]descriptor.Overload{b, a}, args)
	require.Equal(t, Result{Overload: 0, Permutation: 0}, reversed)

	// Re-running many times yields the same answer: resolution is a pure
	// function of (overloads, args).
	for i := 0; i < 100; i++ {
		require.Equal(t, forward, Resolve([]descriptor.Overload{a, b}, args))
	}
}

// The permutation index always belongs to the selected overload's own
// permutation space, even when a later overload would have matched at a
// lower permutation index.
func TestResolvePermutationIndexIsLocalToSelectedOverload(t *testing.T) {
	first := descriptor.NewOverload(
		voidReturn(),
		descriptor.Param(
			descriptor.Object(descriptor.StringClass()),
			descriptor.StringOwned(),
			descriptor.StringView(),
		),
	)
	second := descriptor.NewOverload(
		voidReturn(),
		descriptor.Param(descriptor.Object(descriptor.StringClass()), descriptor.StringView()),
	)

	result := Resolve([]descriptor.Overload{first, second}, []descriptor.TypeTag{descriptor.StringView()})

	// Overload 0 is selected and its own permutation 1 (the string view),
	// not overload 1's permutation 0.
	require.Equal(t, Result{Overload: 0, Permutation: 1}, result)
}

func TestResolveEndToEnd(t *testing.T) {
	overloads := []descriptor.Overload{intOverload(), stringOverload()}

	t.Run("string view selects the second overload's second permutation", func(t *testing.T) {
		result := Resolve(overloads, []descriptor.TypeTag{descriptor.StringView()})
		require.Equal(t, Result{Overload: 1, Permutation: 1}, result)

		reps := result.Reps(overloads)
		require.Equal(t, []descriptor.TypeTag{descriptor.StringView()}, reps)
	})

	t.Run("owned string selects the second overload's first permutation", func(t *testing.T) {
		result := Resolve(overloads, []descriptor.TypeTag{descriptor.StringOwned()})
		require.Equal(t, Result{Overload: 1, Permutation: 0}, result)
	})

	t.Run("int selects the first overload", func(t *testing.T) {
		result := Resolve(overloads, []descriptor.TypeTag{descriptor.Primitive(descriptor.KindInt)})
		require.Equal(t, Result{Overload: 0, Permutation: 0}, result)
	})

	t.Run("two ints match nothing", func(t *testing.T) {
		args := []descriptor.TypeTag{
			descriptor.Primitive(descriptor.KindInt),
			descriptor.Primitive(descriptor.KindInt),
		}
		result := Resolve(overloads, args)
		require.Equal(t, NoMatch, result)
		require.Nil(t, result.Reps(overloads))
	})
}

func TestResolveClassNameCovariantMatching(t *testing.T) {
	overloads := []descriptor.Overload{
		descriptor.NewOverload(voidReturn(), descriptor.Param(descriptor.Object("com/example/Foo"))),
	}

	t.Run("any wrapper shape of the declared class matches", func(t *testing.T) {
		for _, supplied := range []descriptor.TypeTag{
			descriptor.Object("com/example/Foo"),
			descriptor.Local("com/example/Foo"),
			descriptor.Global("com/example/Foo"),
		} {
			result := Resolve(overloads, []descriptor.TypeTag{supplied})
			require.Equal(t, Result{Overload: 0, Permutation: 0}, result, "shape %s", supplied.Shape)
		}
	})

	t.Run("another class never matches even if it subtypes the declared one", func(t *testing.T) {
		result := Resolve(overloads, []descriptor.TypeTag{descriptor.Local("com/example/Bar")})
		require.Equal(t, NoMatch, result)
	})
}
