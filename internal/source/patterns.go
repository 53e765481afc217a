package source

import "regexp"

// This file is the pattern table: every regex and keyword set the
// analyzers depend on. The heuristics approximate a parser with
// lexical matching, so each pattern carries a documented rate of
// false positives (matches inside strings and comments) and false
// negatives (unusual formatting). Tune here, not in the analyzers.

// Method signature forms. MethodSignature matches any decorated or
// undecorated method declaration immediately followed by its opening
// brace; TestMethodSignature is the subset preceded by @Test.
var (
	MethodSignature = regexp.MustCompile(
		`(?:@\w+(?:\([^)]*\))?\s*)*(?:public|private|protected)?\s*(?:static\s+)?(?:final\s+)?[\w<>,\[\]\s]+\s+(\w+)\s*\([^)]*\)\s*(?:throws\s+[\w,\s]+)?\s*\{`)

	TestMethodSignature = regexp.MustCompile(
		`@Test\s*(?:\([^)]*\))?\s*(?:@\w+(?:\([^)]*\))?\s*)*(?:public|private|protected)?\s*(?:void\s+)?(\w+)\s*\([^)]*\)\s*(?:throws\s+[\w,\s]+)?\s*\{`)
)

// Decision points for cyclomatic complexity. Each occurrence adds
// one; keywords match as whole tokens so identifiers like "iford"
// do not count.
var DecisionPoints = []*regexp.Regexp{
	regexp.MustCompile(`\bif\b`),
	regexp.MustCompile(`\belse\s+if\b`),
	regexp.MustCompile(`\bfor\b`),
	regexp.MustCompile(`\bwhile\b`),
	regexp.MustCompile(`\bcase\b`),
	regexp.MustCompile(`\bcatch\b`),
	regexp.MustCompile(`\b\?\s*:`),
	regexp.MustCompile(`\b&&\b`),
	regexp.MustCompile(`\b\|\|\b`),
}

// Cognitive-complexity constructs. The nesting heuristic is
// line-oriented rather than brace-depth-exact; downstream thresholds
// are calibrated to it, so it must not be "improved".
var (
	NestingIncrease = regexp.MustCompile(`\b(if|for|while|switch|try)\b`)
	NestingNeutral  = regexp.MustCompile(`\b(else|catch|finally)\b`)
	BoolOperator    = regexp.MustCompile(`&&|\|\|`)
)

// Assertion-like call forms across the assert / fluent-matcher /
// mock-verification / request-expectation styles.
var AssertionCalls = []*regexp.Regexp{
	regexp.MustCompile(`assert\w+\s*\(`),
	regexp.MustCompile(`\.andExpect\s*\(`),
	regexp.MustCompile(`assertThat\s*\(`),
	regexp.MustCompile(`verify\s*\(`),
	regexp.MustCompile(`\.is\w+\s*\(`),
}

// Arrange-Act-Assert / Given-When-Then detection. Either an explicit
// phase comment or all three structural signals marks a test as
// organized; order is not checked.
var (
	AAAComment   = regexp.MustCompile(`(?i)//\s*(arrange|act|assert|given|when|then)`)
	AAAArrange   = regexp.MustCompile(`(=\s*new\s+|@Autowired|mock\()`)
	AAAAct       = regexp.MustCompile(`\.(perform|execute|call|invoke|get|post|put)`)
	AAAAssertion = regexp.MustCompile(`(assert|verify|andExpect)`)
)

// Exception-handling signals in tests.
var (
	TestExceptionHandling = regexp.MustCompile(`throws\s+\w+|try\s*\{|assertThrows`)
	ExceptionProneUsage   = regexp.MustCompile(`\.perform\(|mockMvc|WebTestClient|RestTemplate|throws\s+Exception`)
)

// Code smell patterns.
var (
	// WideParameterList matches a call or definition whose
	// parenthesized parameter text exceeds 100 characters.
	WideParameterList = regexp.MustCompile(`(\w+)\s*\([^)]{100,}\)`)

	// MagicNumber matches bare numeric literals: three or more
	// digits with a leading 2-9, or four or more with a leading 1-9,
	// not adjacent to other digits or a decimal point.
	MagicNumber = regexp.MustCompile(`[^0-9.]([2-9]\d{2,}|[1-9]\d{3,})[^0-9.]`)

	// MagicNumberContext marks a nearby word that legitimizes a
	// large literal (checked in a short lookback window).
	MagicNumberContext = regexp.MustCompile(`(?i)(port|year|status|code)`)

	TodoMarker     = regexp.MustCompile(`\b(TODO|FIXME|HACK|XXX)\b`)
	WildcardImport = regexp.MustCompile(`(?m)^import\s+[\w.]+\.\*;`)

	PrivateMethodDecl = regexp.MustCompile(`private\s+\w+\s+(\w+)\s*\(`)
	PrivateFieldDecl  = regexp.MustCompile(`private\s+(?:final\s+)?[\w<>,\s]+\s+(\w+)\s*[;=]`)
)

// Naming convention rules.
var (
	ClassDecl      = regexp.MustCompile(`class\s+(\w+)`)
	MethodDecl     = regexp.MustCompile(`(?:public|private|protected)\s+\w+\s+(\w+)\s*\(`)
	ConstantDecl   = regexp.MustCompile(`static\s+final\s+\w+\s+(\w+)\s*=`)
	PascalCase     = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	CamelCase      = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	UpperSnakeCase = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// Framework allow-lists (JUnit 5 lifecycle/metadata annotations and
// the Spring Boot test harness).
var (
	JUnitAnnotations = map[string]bool{
		"Test": true, "BeforeEach": true, "AfterEach": true,
		"BeforeAll": true, "AfterAll": true, "DisplayName": true,
		"Nested": true, "Disabled": true, "ParameterizedTest": true,
		"RepeatedTest": true, "TestFactory": true, "TestTemplate": true,
		"Timeout": true,
	}

	SpringTestAnnotations = map[string]bool{
		"SpringBootTest": true, "WebMvcTest": true, "DataJpaTest": true,
		"AutoConfigureMockMvc": true, "MockBean": true, "SpyBean": true,
		"ActiveProfiles": true, "TestConfiguration": true,
		"WithMockUser": true, "WithAnonymousUser": true,
	}

	// ValidAssertMethods spans JUnit 5, Spring MockMvc, Hamcrest and
	// AssertJ call names.
	ValidAssertMethods = map[string]bool{
		"assertEquals": true, "assertNotEquals": true, "assertTrue": true,
		"assertFalse": true, "assertNull": true, "assertNotNull": true,
		"assertThrows": true, "assertDoesNotThrow": true, "assertAll": true,
		"assertArrayEquals": true, "assertIterableEquals": true,
		"assertLinesMatch": true, "assertTimeout": true,
		"assertTimeoutPreemptively": true, "fail": true,
		"andExpect": true, "andDo": true, "andReturn": true,
		"assertThat": true, "isEqualTo": true, "isNotNull": true,
		"isNull": true, "isTrue": true, "isFalse": true,
		"hasSize": true, "contains": true, "containsExactly": true,
	}

	AnnotationUse = regexp.MustCompile(`@(\w+)`)
	AssertionName = regexp.MustCompile(`(assert\w+|verify\w*)\s*\(`)

	// LifecycleAnnotation exempts setup/teardown methods from the
	// non-framework-method flag.
	LifecycleAnnotation = regexp.MustCompile(`@(BeforeEach|AfterEach|BeforeAll|AfterAll)`)
)

// FrameworkPrefixes are annotation name prefixes that claim to be
// framework annotations; a prefixed name absent from the allow-lists
// is a framework keyword violation.
var FrameworkPrefixes = []string{"Test", "Before", "After", "Mock", "Spring"}

// NonTestNamePrefixes are conventional helper-method name prefixes
// (getters, builders, fixtures) exempt from non-framework flagging.
var NonTestNamePrefixes = []string{
	"get", "set", "is", "has", "setup", "teardown",
	"init", "create", "build", "mock",
}

// Type heuristics: raw generic container declarations and
// empty-argument annotations.
var (
	RawGenericDecl  = regexp.MustCompile(`\b(List|Map|Set|Collection|Optional)\s+\w+\s*[;=]`)
	EmptyAnnotation = regexp.MustCompile(`@\w+\s*\(\s*\)`)
)

// Syntax heuristics.
var (
	// StatementShape is the "ident ident = expr" form that suggests
	// a declaration statement missing its semicolon.
	StatementShape = regexp.MustCompile(`^\w+\s+\w+\s*=\s*.+[^;]$`)

	ControlKeywordStart = regexp.MustCompile(
		`^(public|private|protected|if|else|for|while|try|catch|finally|switch)`)

	KeywordNoSpace = regexp.MustCompile(`\b(if|for|while|switch|catch)\(`)
)

// Design pattern presence checks. These are existence tests, not
// structural verification.
var (
	BuilderPattern         = regexp.MustCompile(`\.builder\(\)|Builder\s+\w+\s*=`)
	FactoryPattern         = regexp.MustCompile(`Factory|create\w+\(\)`)
	SingletonPattern       = regexp.MustCompile(`getInstance\(\)|private\s+static\s+final\s+\w+\s+INSTANCE`)
	PageObjectPattern      = regexp.MustCompile(`Page\s*\{|PageObject|@FindBy`)
	TestDataBuilderPattern = regexp.MustCompile(`TestDataBuilder|with\w+\([^)]+\)\.build\(\)`)
	NestedGroupMarker      = regexp.MustCompile(`@Nested`)
	ProductionAnnotation   = regexp.MustCompile(`@Service|@Repository|@Controller`)
)
