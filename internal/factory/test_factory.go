package factory

import (
	"time"

	"github.com/wordparty/wordparty/internal/dependencies/mocks"
	"github.com/wordparty/wordparty/internal/storage/memory"
	"github.com/wordparty/wordparty/internal/testutil"
)

// TestAdminKey is the admin key wired into test apps.
const TestAdminKey = "test-admin-key"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, TestAdminKey, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
