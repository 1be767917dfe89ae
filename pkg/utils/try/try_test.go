package try_test

import (
	"errors"
	"testing"

	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/try"
)

type fatalRecorder struct {
	called bool
}

func (f *fatalRecorder) Fatal(...any) {
	f.called = true
}

func TestTo(t *testing.T) {
	t.Run("an ok pair passes its value through", func(t *testing.T) {
		testee := try.To(42, nil)

		value, err := testee.Get()
		if err != nil {
			t.Fatalf("Get returned error: %s", err)
		}
		if value != 42 {
			t.Errorf("Get = %d, want 42", value)
		}

		ftl := &fatalRecorder{}
		if got := testee.OrFatal(ftl); got != 42 || ftl.called {
			t.Errorf("OrFatal = %d (fatal: %v)", got, ftl.called)
		}
		if got := testee.OrDefault(0); got != 42 {
			t.Errorf("OrDefault = %d, want 42", got)
		}
	})

	t.Run("a ng pair carries its error", func(t *testing.T) {
		expected := errors.New("broken")
		testee := try.To(42, expected)

		if _, err := testee.Get(); !errors.Is(err, expected) {
			t.Errorf("Get returned %v, want %v", err, expected)
		}

		ftl := &fatalRecorder{}
		testee.OrFatal(ftl)
		if !ftl.called {
			t.Error("OrFatal did not call Fatal")
		}
		if got := testee.OrDefault(7); got != 7 {
			t.Errorf("OrDefault = %d, want 7", got)
		}
	})
}
