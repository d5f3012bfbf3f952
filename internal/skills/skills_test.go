package skills

import (
	"strings"
	"testing"

	"github.com/abhisek/tutorin/internal/textnorm"
	"github.com/abhisek/tutorin/internal/tutor"
)

func route(t *testing.T, input string) (tutor.Skill, *tutor.ProblemContext) {
	t.Helper()
	normalized := textnorm.Normalize(input)
	for _, sk := range DefaultSkills() {
		if ctx, ok := sk.MatchAndParse(normalized, ""); ok {
			return sk, ctx
		}
	}
	t.Fatalf("no skill matched %q", input)
	return nil, nil
}

func TestRoutingOrder(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2/3 + 5/7", "frac-addsub-diff"},
		// 2/4 simplifies to 1/2 at parse time, so the denominators differ.
		{"1/4 + 2/4", "frac-addsub-diff"},
		{"1/5 + 2/5", "frac-addsub-same"},
		{"2/3 x 3/5", "frac-mul"},
		{"2/3 : 3/4", "frac-div"},
		{"2/3 ÷ 4/5", "frac-div"},
		{"1/2 : 3", "frac-div"},
		{"1/2 / 3", "frac-div"},
		{"1,5 + 2,25", "decimals"},
		{"5 x 3", "integers"},
		{"7 : 2", "integers"},
		{"-4 - 9", "integers"},
		{"m.c.m. de 4 y 6", "mcm-mcd"},
		{"mcd de 12 y 8", "mcm-mcd"},
		{"5^2", "powers"},
		{"cuadrado de 7", "powers"},
		{"(2+3) x 4", "order-ops"},
		{"3 km a m", "units"},
		{"área rectángulo 5x7", "geometry"},
		{"media de 2, 4, 6", "stats"},
		{"redondea 3.14159 a 2 decimales", "round"},
		{"esdrújula", "acentuacion"},
		{"El perro come pienso", "suj-pred"},
		{"sinónimo de feliz", "lexico"},
		{"¿en qué estado está el hielo?", "matter"},
		{"el circuito tiene una pila y una bombilla", "circuit"},
		{"dime el orden de los planetas", "planets"},
		{"¿qué sistema lleva la sangre?", "bio"},
		{"convierte 1994 a romanos", "roman"},
		{"ordena 1492, 1812, 711", "timeline"},
		{"¿en qué siglo está el año 1492?", "century"},
		{"capital de francia", "capitals"},
		{"¿de qué país es lima?", "capitals"},
		{"¿en qué continente está japón?", "capitals"},
	}
	for _, c := range cases {
		sk, _ := route(t, c.input)
		if sk.ID() != c.want {
			t.Errorf("route(%q) = %q, want %q", c.input, sk.ID(), c.want)
		}
	}
}

func TestPlainIntegerStaysOutOfFractions(t *testing.T) {
	// "5 x 3" and "7 : 2" parse fine as fractions over 1, but must reach
	// the integer skill so division truncates.
	for _, input := range []string{"5 x 3", "7 : 2", "8 - 3"} {
		sk, _ := route(t, input)
		if strings.HasPrefix(sk.ID(), "frac-") {
			t.Errorf("route(%q) = %q, want a non-fraction skill", input, sk.ID())
		}
	}
}

func walk(t *testing.T, input string, answers []string) (tutor.Skill, *tutor.ProblemContext) {
	t.Helper()
	sk, ctx := route(t, input)
	steps := sk.Steps(ctx)
	if len(steps) != len(answers) {
		t.Fatalf("%s: got %d steps, want %d", sk.ID(), len(steps), len(answers))
	}
	for i, ans := range answers {
		res := steps[i].Check(ctx, ans)
		if !res.Ok {
			t.Fatalf("%s step %s: answer %q rejected: %s", sk.ID(), steps[i].ID, ans, res.Feedback)
		}
	}
	return sk, ctx
}

func TestFracAddSubDiffWalkthrough(t *testing.T) {
	sk, ctx := walk(t, "2/3 + 5/7", []string{"21", "14 y 15", "29/21", "29/21"})
	if got := sk.FinalAnswer(ctx); got != "29/21" {
		t.Errorf("FinalAnswer = %q, want %q", got, "29/21")
	}
}

func TestFracSubSimplifies(t *testing.T) {
	sk, ctx := walk(t, "5/6 - 1/3", []string{"6", "5 y 2", "3/6", "1/2"})
	if got := sk.FinalAnswer(ctx); got != "1/2" {
		t.Errorf("FinalAnswer = %q, want %q", got, "1/2")
	}
}

func TestFracDivWalkthrough(t *testing.T) {
	sk, ctx := walk(t, "2/3 : 3/4", []string{"4/3", "8/9"})
	if got := sk.FinalAnswer(ctx); got != "8/9" {
		t.Errorf("FinalAnswer = %q, want %q", got, "8/9")
	}
}

func TestIntegerDivisionTruncates(t *testing.T) {
	sk, ctx := route(t, "7 : 2")
	steps := sk.Steps(ctx)
	if res := steps[0].Check(ctx, "3"); !res.Ok {
		t.Errorf("7 : 2 should accept 3, got feedback %q", res.Feedback)
	}
	if res := steps[0].Check(ctx, "3.5"); res.Ok {
		t.Error("7 : 2 should reject 3.5 in integer mode")
	}
	if got := sk.FinalAnswer(ctx); got != "3" {
		t.Errorf("FinalAnswer = %q, want %q", got, "3")
	}
}

func TestGCDLCM(t *testing.T) {
	sk, ctx := walk(t, "m.c.m. de 4 y 6", []string{"12"})
	if got := sk.FinalAnswer(ctx); got != "MCM(4,6)=12" {
		t.Errorf("FinalAnswer = %q, want %q", got, "MCM(4,6)=12")
	}
	sk, ctx = walk(t, "m.c.d. de 12 y 8", []string{"4"})
	if got := sk.FinalAnswer(ctx); got != "MCD(12,8)=4" {
		t.Errorf("FinalAnswer = %q, want %q", got, "MCD(12,8)=4")
	}
}

func TestOrderOps(t *testing.T) {
	walk(t, "(2+3) x 4", []string{"20"})
	walk(t, "(10 - 4) : 2", []string{"3"})
}

func TestOrderOpsRejectsUnsafeExpression(t *testing.T) {
	sk := newOrderOps()
	if _, ok := sk.MatchAndParse("os.exit(1)", ""); ok {
		t.Error("expression with identifiers should not match")
	}
	if _, ok := sk.MatchAndParse("(1/0) + 2", ""); ok {
		t.Error("division by zero should not match")
	}
}

func TestUnitsConversion(t *testing.T) {
	sk, ctx := walk(t, "3 km a m", []string{"3000"})
	if got := sk.FinalAnswer(ctx); got != "3000 m" {
		t.Errorf("FinalAnswer = %q, want %q", got, "3000 m")
	}
}

func TestUnitsCrossFamilyDegrades(t *testing.T) {
	sk, ctx := route(t, "3 kg a l")
	steps := sk.Steps(ctx)
	if len(steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(steps))
	}
	if !strings.Contains(steps[0].Ask(ctx), "no está mapeada") {
		t.Errorf("cross-family hint missing: %q", steps[0].Ask(ctx))
	}
	if res := steps[0].Check(ctx, "lo que sea"); !res.Ok {
		t.Error("degraded step should accept any reply")
	}
}

func TestGeometry(t *testing.T) {
	walk(t, "área rectángulo 5x7", []string{"35"})
	walk(t, "perímetro rectángulo 5x7", []string{"24"})
	walk(t, "área triángulo b=6 h=4", []string{"12"})
	walk(t, "volumen cubo de lado 3", []string{"27"})
}

func TestGeometryCircleTolerance(t *testing.T) {
	sk, ctx := route(t, "área círculo r=2")
	steps := sk.Steps(ctx)
	if res := steps[0].Check(ctx, "12.566"); !res.Ok {
		t.Errorf("12.566 should pass the 1e-3 tolerance, got %q", res.Feedback)
	}
	if res := steps[0].Check(ctx, "12.5"); res.Ok {
		t.Error("12.5 is outside tolerance and should fail")
	}
}

func TestStats(t *testing.T) {
	walk(t, "media de 2, 4, 6", []string{"4"})
	walk(t, "mediana de 1, 3, 5, 7", []string{"4"})
	walk(t, "moda de 2, 2, 3", []string{"2"})
	walk(t, "rango de 3, 9, 5", []string{"6"})
}

func TestMedianaNotShadowedByMedia(t *testing.T) {
	sk, ctx := route(t, "mediana de 1, 2, 100")
	if sk.ID() != "stats" {
		t.Fatalf("routed to %q", sk.ID())
	}
	if got := sk.FinalAnswer(ctx); got != "2" {
		t.Errorf("mediana de 1, 2, 100 = %q, want %q", got, "2")
	}
}

func TestRounding(t *testing.T) {
	sk, ctx := walk(t, "redondea 3.14159 a 2 decimales", []string{"3.14"})
	if got := sk.FinalAnswer(ctx); got != "3.14" {
		t.Errorf("FinalAnswer = %q, want %q", got, "3.14")
	}
}

func TestClassifyWord(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"esdrújula", "esdrújula"},
		{"sofá", "aguda"},
		{"camión", "aguda"},
		{"árbol", "llana"},
		{"casa", "llana"},
		{"reloj", "aguda"},
		{"pared", "aguda"},
		{"lunes", "llana"},
	}
	for _, c := range cases {
		if got := ClassifyWord(c.word); got != c.want {
			t.Errorf("ClassifyWord(%q) = %q, want %q", c.word, got, c.want)
		}
	}
}

func TestAcentuacionAcceptsUnaccentedAnswer(t *testing.T) {
	sk, ctx := route(t, "esdrújula")
	steps := sk.Steps(ctx)
	if res := steps[0].Check(ctx, "esdrujula"); !res.Ok {
		t.Errorf("unaccented answer should pass, got %q", res.Feedback)
	}
}

func TestLexico(t *testing.T) {
	sk, ctx := route(t, "sinónimo de feliz")
	steps := sk.Steps(ctx)
	if res := steps[0].Check(ctx, "alegre"); !res.Ok {
		t.Errorf("alegre should be a synonym of feliz, got %q", res.Feedback)
	}
	if res := steps[0].Check(ctx, "triste"); res.Ok {
		t.Error("triste is not a synonym of feliz")
	}
	_ = sk

	sk, ctx = route(t, "antónimo de grande")
	steps = sk.Steps(ctx)
	if res := steps[0].Check(ctx, "pequeño"); !res.Ok {
		t.Errorf("pequeño should be an antonym of grande, got %q", res.Feedback)
	}
}

func TestLexicoUnknownWord(t *testing.T) {
	sk, ctx := route(t, "sinónimo de zanahoria")
	steps := sk.Steps(ctx)
	res := steps[0].Check(ctx, "naranja")
	if res.Ok {
		t.Fatal("unknown word should never validate")
	}
	if !strings.Contains(res.Feedback, "No lo tengo en mi lista") {
		t.Errorf("feedback = %q", res.Feedback)
	}
	_ = sk
}

func TestPlanetsExactOrder(t *testing.T) {
	sk, ctx := route(t, "dime el orden de los planetas")
	steps := sk.Steps(ctx)
	good := "mercurio, venus, tierra, marte, jupiter, saturno, urano, neptuno"
	if res := steps[0].Check(ctx, good); !res.Ok {
		t.Errorf("correct unaccented order rejected: %q", res.Feedback)
	}
	// A trailing Pluto is tolerated; anything else extra is not.
	if res := steps[0].Check(ctx, good+", pluton"); !res.Ok {
		t.Errorf("order with trailing pluton rejected: %q", res.Feedback)
	}
	if res := steps[0].Check(ctx, good+", ceres"); res.Ok {
		t.Error("order with a stray extra body accepted")
	}
	bad := "venus, mercurio, tierra, marte, jupiter, saturno, urano, neptuno"
	if res := steps[0].Check(ctx, bad); res.Ok {
		t.Error("wrong order accepted")
	}
	short := "mercurio, venus"
	if res := steps[0].Check(ctx, short); res.Ok {
		t.Error("short list accepted")
	}
	_ = sk
}

func TestRomanConversion(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "I"}, {4, "IV"}, {9, "IX"}, {14, "XIV"},
		{40, "XL"}, {90, "XC"}, {400, "CD"}, {900, "CM"},
		{1994, "MCMXCIV"}, {2026, "MMXXVI"}, {3999, "MMMCMXCIX"},
	}
	for _, c := range cases {
		if got := ToRoman(c.n); got != c.want {
			t.Errorf("ToRoman(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestRomanAnswerCaseInsensitive(t *testing.T) {
	sk, ctx := route(t, "convierte 1994 a romanos")
	steps := sk.Steps(ctx)
	if res := steps[0].Check(ctx, "mcmxciv"); !res.Ok {
		t.Errorf("lowercase roman answer rejected: %q", res.Feedback)
	}
	_ = sk
}

func TestTimeline(t *testing.T) {
	sk, ctx := walk(t, "ordena 1492, 1812, 711", []string{"711, 1492, 1812"})
	if got := sk.FinalAnswer(ctx); got != "711, 1492, 1812" {
		t.Errorf("FinalAnswer = %q, want %q", got, "711, 1492, 1812")
	}
}

func TestCentury(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"¿en qué siglo está el año 1492?", "Siglo 15"},
		{"siglo del año 1800", "Siglo 18"},
		{"siglo del año 1801", "Siglo 19"},
		{"siglo del año 100", "Siglo 1"},
		{"siglo del año 101", "Siglo 2"},
	}
	for _, c := range cases {
		sk, ctx := route(t, c.input)
		if sk.ID() != "century" {
			t.Fatalf("route(%q) = %q, want century", c.input, sk.ID())
		}
		if got := sk.FinalAnswer(ctx); got != c.want {
			t.Errorf("century(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCapitalsAcceptsUnaccentedAnswer(t *testing.T) {
	sk, ctx := route(t, "capital de francia")
	steps := sk.Steps(ctx)
	for _, ans := range []string{"parís", "paris", "París"} {
		if res := steps[0].Check(ctx, ans); !res.Ok {
			t.Errorf("answer %q rejected: %q", ans, res.Feedback)
		}
	}
	if res := steps[0].Check(ctx, "lyon"); res.Ok {
		t.Error("lyon accepted as capital of francia")
	}
	if got := sk.FinalAnswer(ctx); got != "parís" {
		t.Errorf("FinalAnswer = %q, want %q", got, "parís")
	}
}

func TestCapitalsCountryAndContinent(t *testing.T) {
	sk, ctx := route(t, "¿de qué país es lima?")
	steps := sk.Steps(ctx)
	if res := steps[0].Check(ctx, "Perú"); !res.Ok {
		t.Errorf("Perú rejected: %q", res.Feedback)
	}
	if res := steps[0].Check(ctx, "peru"); !res.Ok {
		t.Errorf("peru rejected: %q", res.Feedback)
	}

	sk, ctx = route(t, "¿en qué continente está japón?")
	steps = sk.Steps(ctx)
	if res := steps[0].Check(ctx, "asia"); !res.Ok {
		t.Errorf("asia rejected: %q", res.Feedback)
	}
	_ = sk
}

func TestCapitalsAcceptsAlternateCountryName(t *testing.T) {
	sk, ctx := route(t, "capital de holanda")
	if sk.ID() != "capitals" {
		t.Fatalf("route = %q, want capitals", sk.ID())
	}
	steps := sk.Steps(ctx)
	if res := steps[0].Check(ctx, "amsterdam"); !res.Ok {
		t.Errorf("amsterdam rejected: %q", res.Feedback)
	}
}

func TestCapitalsUnknownCountryDoesNotMatch(t *testing.T) {
	sk := newCapitals()
	if _, ok := sk.MatchAndParse("capital de narnia", ""); ok {
		t.Error("unknown country should not match")
	}
}

func TestStepwiseMatchesFinalAnswer(t *testing.T) {
	// The value validated by the last step must agree with FinalAnswer.
	sk, ctx := walk(t, "2/3 x 3/5", []string{"6", "15", "2/5"})
	if got := sk.FinalAnswer(ctx); got != "2/5" {
		t.Errorf("frac-mul FinalAnswer = %q, want %q", got, "2/5")
	}

	sk, ctx = walk(t, "1.5 + 2.25", []string{"3.75"})
	if got := sk.FinalAnswer(ctx); got != "3.75" {
		t.Errorf("decimals FinalAnswer = %q, want %q", got, "3.75")
	}

	sk, ctx = walk(t, "5^2", []string{"25"})
	if got := sk.FinalAnswer(ctx); got != "5^2=25" {
		t.Errorf("powers FinalAnswer = %q, want %q", got, "5^2=25")
	}
}

func TestParenthesizedExpressionReachesOrderOps(t *testing.T) {
	for _, input := range []string{"(2+3) x 4", "(10 - 4) : 2", "2 * (3.5 + 1)"} {
		sk, _ := route(t, input)
		if sk.ID() != "order-ops" {
			t.Errorf("route(%q) = %q, want order-ops", input, sk.ID())
		}
	}
}
