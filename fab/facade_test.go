package fab_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/fabricate/fab"
)

//
// -----------------------------------------------------------------------------
// InstanceOf: registered fabricators
// -----------------------------------------------------------------------------

// TestInstanceOf_UsesRegisteredFabricator verifies resolution delegates to
// the registered fabricator with options passed through untouched.
func TestInstanceOf_UsesRegisteredFabricator(t *testing.T) {
	t.Parallel()

	f := fab.NewFacade(fab.NewRegistry().RegisterFabricatorsIn(newGadgetFabricator()))

	g, err := fab.InstanceOf[gadget](f)
	require.NoError(t, err)
	assert.Equal(t, "carbon", g.Material)

	over, err := fab.InstanceOf(f, fab.WithArgs[gadget]("steel"))
	require.NoError(t, err)
	assert.Equal(t, "steel", over.Material)
}

//
// -----------------------------------------------------------------------------
// InstanceOf: default fabricator synthesis
// -----------------------------------------------------------------------------

// TestInstanceOf_DefaultPath_ZeroValue verifies an unregistered struct type
// yields a default-constructed, uninitialized instance.
func TestInstanceOf_DefaultPath_ZeroValue(t *testing.T) {
	t.Parallel()

	f := fab.NewFacade(nil)

	w, err := fab.InstanceOf[widget](f)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, widget{}, *w)
}

// TestInstanceOf_DefaultPath_Args verifies the Widget scenario: no
// registration, one-field struct, positional arg lands in the field.
func TestInstanceOf_DefaultPath_Args(t *testing.T) {
	t.Parallel()

	f := fab.NewFacade(nil)

	w, err := fab.InstanceOf(f, fab.WithArgs[widget]("a"))
	require.NoError(t, err)
	assert.Equal(t, "a", w.Name)
}

// TestInstanceOf_DefaultPath_NonStructNoArgs verifies non-struct types still
// work with zero setup as long as no args are in play.
func TestInstanceOf_DefaultPath_NonStructNoArgs(t *testing.T) {
	t.Parallel()

	f := fab.NewFacade(nil)

	n, err := fab.InstanceOf[int](f)
	require.NoError(t, err)
	assert.Zero(t, *n)
}

// TestInstanceOf_ResolutionErrors verifies the facade (not the fabricator)
// reports unresolvable requests.
func TestInstanceOf_ResolutionErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		call       func(f *fab.Facade) error
		wantReason string
	}{
		{
			name: "non-struct with args",
			call: func(f *fab.Facade) error {
				_, err := fab.InstanceOf(f, fab.WithArgs[int](1))
				return err
			},
			wantReason: "no construction signature",
		},
		{
			name: "nil facade",
			call: func(*fab.Facade) error {
				_, err := fab.InstanceOf[widget](nil)
				return err
			},
			wantReason: "nil registry",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.call(fab.NewFacade(nil))
			require.Error(t, err)

			var re fab.ResolutionError
			require.True(t, errors.As(err, &re))
			assert.Contains(t, re.Reason, tc.wantReason)
		})
	}
}

// TestInstanceOf_NoSecondWrappingLayer verifies construction failures keep
// the fabricator's single FabricationError layer through the facade.
func TestInstanceOf_NoSecondWrappingLayer(t *testing.T) {
	t.Parallel()

	f := fab.NewFacade(nil)

	_, err := fab.InstanceOf(f, fab.WithArgs[widget](42))
	require.Error(t, err)

	var fe fab.FabricationError
	require.True(t, errors.As(err, &fe))
	assert.IsType(t, fab.ConstructionError{}, fe.Cause)
	// The outermost error is the FabricationError itself, not a re-wrap.
	assert.IsType(t, fab.FabricationError{}, err)
}

//
// -----------------------------------------------------------------------------
// CollectionOf
// -----------------------------------------------------------------------------

// TestCollectionOf_RegisteredAndPerIndex verifies the Item scenario:
// registered defaults plus per-index labeling, in index order.
func TestCollectionOf_RegisteredAndPerIndex(t *testing.T) {
	t.Parallel()

	reg := fab.NewRegistry()
	fab.Register(reg, fab.New(func(r *fab.Rules[widget]) { r.SetArgs("item") }))
	f := fab.NewFacade(reg)

	items, err := fab.CollectionOf[widget](f, 3,
		fab.WithEachInitializer(func(w *widget, i int) { w.Name += "-L" + strconv.Itoa(i) }),
	)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, w := range items {
		assert.Equal(t, "item-L"+strconv.Itoa(i), w.Name)
	}
}

// TestCollectionOf_DefaultPath verifies collections work without any
// registration.
func TestCollectionOf_DefaultPath(t *testing.T) {
	t.Parallel()

	f := fab.NewFacade(nil)

	ws, err := fab.CollectionOf[widget](f, 2)
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, widget{}, *ws[0])
}

//
// -----------------------------------------------------------------------------
// Default facade / Use / MustMake
// -----------------------------------------------------------------------------

// TestDefaultFacade_LazyInitAndUse verifies the process-wide facade is
// created on first access and Use re-scans its registry wholesale.
func TestDefaultFacade_LazyInitAndUse(t *testing.T) {
	// Mutates process-wide state; not parallel.
	fab.ResetDefault()
	t.Cleanup(fab.ResetDefault)

	require.Same(t, fab.Default(), fab.Default())

	fab.Use(newGadgetFabricator())
	g, err := fab.MakeInstance[gadget]()
	require.NoError(t, err)
	assert.Equal(t, "carbon", g.Material)

	// Re-scan with a different candidate set drops gadget support back to
	// the default path (zero value, no stored args).
	fab.Use(newWidgetFabricator())
	g2, err := fab.MakeInstance[gadget]()
	require.NoError(t, err)
	assert.Empty(t, g2.Material)

	ws, err := fab.MakeCollection[widget](2)
	require.NoError(t, err)
	assert.Len(t, ws, 2)
}

// TestMustMake verifies the panic-on-error convenience.
func TestMustMake(t *testing.T) {
	fab.ResetDefault()
	t.Cleanup(fab.ResetDefault)

	w := fab.MustMake(fab.WithArgs[widget]("a"))
	assert.Equal(t, "a", w.Name)

	require.Panics(t, func() {
		_ = fab.MustMake(fab.WithArgs[widget](42))
	})
}
