package analyze

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

const accountFixture = `public class AccountTest {

    @Test
    public void shouldTransfer() {
        // given
        Account a = new Account();
        a.deposit(100);
        assertEquals(100, a.balance());
    }

    @Test
    public void shouldReject() {
        assertThrows(IllegalStateException.class, () -> new Account(-1));
    }
}
`

func runTests(t *testing.T, text string) metrics.Test {
	t.Helper()
	buf := source.NewBuffer("AccountTest.java", text)
	return analyzeTests(buf, source.NewIndex(buf), config.DefaultConfig().Thresholds)
}

func TestAnalyzeTests_Counts(t *testing.T) {
	m := runTests(t, accountFixture)

	if m.TestMethodCount != 2 {
		t.Errorf("test_method_count = %d, want 2", m.TestMethodCount)
	}
	if m.AssertCount != 2 {
		t.Errorf("assert_count = %d, want 2", m.AssertCount)
	}
	if m.AssertsPerTest != 1 {
		t.Errorf("asserts_per_test = %v, want 1", m.AssertsPerTest)
	}
}

// A given/when/then phase comment marks a test organized; the second
// test has neither a comment nor a setup expression.
func TestAnalyzeTests_AAAByComment(t *testing.T) {
	m := runTests(t, accountFixture)

	if m.AAAOrganizedCount != 1 {
		t.Errorf("aaa_organized_count = %d, want 1", m.AAAOrganizedCount)
	}
	if m.AAAPercentage != 50 {
		t.Errorf("aaa_percentage = %v, want 50", m.AAAPercentage)
	}
}

// The structural triple (setup expression, action call, verification
// call) marks a test organized without any phase comment.
func TestAnalyzeTests_AAAByStructure(t *testing.T) {
	text := `class T {
    @Test
    public void shouldSubmit() {
        Order order = new Order();
        client.post(order);
        verify(gateway).accept(order);
    }
}
`
	m := runTests(t, text)
	if m.AAAOrganizedCount != 1 {
		t.Errorf("aaa_organized_count = %d, want 1", m.AAAOrganizedCount)
	}
}

func TestAnalyzeTests_ExceptionHandling(t *testing.T) {
	m := runTests(t, accountFixture)

	if m.TestsWithExceptionHandling != 1 {
		t.Errorf("tests_with_exception_handling = %d, want 1 (assertThrows)", m.TestsWithExceptionHandling)
	}
	if m.ExceptionHandlingPercentage != 50 {
		t.Errorf("exception_handling_percentage = %v, want 50", m.ExceptionHandlingPercentage)
	}
	if m.ExceptionHandlingNeeded {
		t.Error("no exception-prone constructs in fixture, needed should be false")
	}
}

func TestAnalyzeTests_ExceptionHandlingNeeded(t *testing.T) {
	text := `class T {
    @Test
    public void shouldFetch() {
        mockMvc.perform(get("/orders"));
        assertTrue(ok);
    }
}
`
	m := runTests(t, text)
	if !m.ExceptionHandlingNeeded {
		t.Error("mockMvc usage should mark exception handling as needed")
	}
}

func TestAnalyzeTests_LongTestFlagged(t *testing.T) {
	var b strings.Builder
	b.WriteString("class LongTest {\n    @Test\n    public void shouldDoManyThings() {\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "        step%d();\n", i)
	}
	b.WriteString("    }\n}\n")

	m := runTests(t, b.String())

	if m.LongTestCount != 1 {
		t.Fatalf("long_test_count = %d, want 1: %v", m.LongTestCount, m.LongTests)
	}
	// Body spans the opening brace line through the closing brace.
	if want := "shouldDoManyThings (27 lines)"; m.LongTests[0] != want {
		t.Errorf("long test entry = %q, want %q", m.LongTests[0], want)
	}
}

func TestAnalyzeTests_NestedGroups(t *testing.T) {
	text := `class T {
    @Nested
    class WhenEmpty {
        @Test
        public void shouldBeZero() {
            assertEquals(0, size);
        }
    }
}
`
	m := runTests(t, text)
	if m.NestedGroups != 1 {
		t.Errorf("nested groups = %d, want 1", m.NestedGroups)
	}
}

func TestAnalyzeTests_NoTests(t *testing.T) {
	m := runTests(t, "class Empty {}\n")

	if m.TestMethodCount != 0 {
		t.Errorf("test_method_count = %d, want 0", m.TestMethodCount)
	}
	if m.AssertsPerTest != 0 || m.AAAPercentage != 0 {
		t.Errorf("ratios should be zero without division by zero, got %+v", m)
	}
}
