package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/cocktail"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/eightysix"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/special"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/wine"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

type fixture struct {
	svc       *Service
	wines     *wine.MemoryRepository
	cocktails *cocktail.MemoryRepository
	specials  *special.MemoryRepository
	log       *eightysix.MemoryRepository
}

func newFixture(client *fakeLLM) *fixture {
	f := &fixture{
		wines:     wine.NewMemoryRepository(),
		cocktails: cocktail.NewMemoryRepository(),
		specials:  special.NewMemoryRepository(),
		log:       eightysix.NewMemoryRepository(),
	}
	f.svc = NewService(client, f.wines, f.cocktails, f.specials, f.log)
	return f
}

func Test86Wine_MatchesAllSubstringsAndLogsOnce(t *testing.T) {
	f := newFixture(&fakeLLM{
		response: `{"action": "86", "item": "Malbec", "type": "wine"}`,
	})

	ctx := context.Background()
	for _, name := range []string{"Malbec 2019", "Old malbec Reserve", "Chianti"} {
		_ = f.wines.Create(ctx, &wine.Wine{Name: name, Type: "red"})
	}

	cmd, result, err := f.svc.Execute(ctx, "86 the Malbec")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Action != "86" {
		t.Fatalf("unexpected action %q", cmd.Action)
	}
	if !result.Success {
		t.Fatal("expected success result")
	}

	wines, _ := f.wines.List(ctx)
	for _, w := range wines {
		wantDown := strings.Contains(strings.ToLower(w.Name), "malbec")
		if w.Is86d != wantDown {
			t.Fatalf("wine %q: is_86d=%v, want %v", w.Name, w.Is86d, wantDown)
		}
	}

	entries, _ := f.log.List(ctx)
	if len(entries) != 1 {
		t.Fatalf("expected exactly one log entry, got %d", len(entries))
	}
	if entries[0].ItemType != "wine" || entries[0].ItemName != "Malbec" {
		t.Fatalf("unexpected log entry: %+v", entries[0])
	}
	if entries[0].ItemID == nil {
		t.Fatal("log entry must reference the first matched row")
	}
}

func TestUn86Wine_NoLogEntry(t *testing.T) {
	f := newFixture(&fakeLLM{
		response: `{"action": "un86", "item": "Malbec", "type": "wine"}`,
	})

	ctx := context.Background()
	_ = f.wines.Create(ctx, &wine.Wine{Name: "Malbec 2019", Type: "red"})
	matched, _ := f.wines.SetEightySixed(ctx, "Malbec", true)
	if len(matched) != 1 {
		t.Fatal("fixture setup failed")
	}

	_, _, err := f.svc.Execute(ctx, "the Malbec is back")
	if err != nil {
		t.Fatal(err)
	}

	wines, _ := f.wines.List(ctx)
	if wines[0].Is86d {
		t.Fatal("expected wine to be un-86'd")
	}

	entries, _ := f.log.List(ctx)
	if len(entries) != 0 {
		t.Fatalf("un86 must not log, got %d entries", len(entries))
	}
}

func TestNonJSONResponse_FailsWithoutMutations(t *testing.T) {
	f := newFixture(&fakeLLM{
		response: "I'm sorry, I don't understand that command.",
	})

	ctx := context.Background()
	_ = f.wines.Create(ctx, &wine.Wine{Name: "Malbec 2019", Type: "red"})

	_, _, err := f.svc.Execute(ctx, "86 the Malbec")
	if err == nil {
		t.Fatal("expected a parse error")
	}

	wines, _ := f.wines.List(ctx)
	if wines[0].Is86d {
		t.Fatal("parse failure must not mutate the store")
	}
	entries, _ := f.log.List(ctx)
	if len(entries) != 0 {
		t.Fatal("parse failure must not log")
	}
}

func TestModelFailure_IsFatal(t *testing.T) {
	f := newFixture(&fakeLLM{err: errors.New("quota exceeded")})

	_, _, err := f.svc.Execute(context.Background(), "86 the Malbec")
	if err == nil {
		t.Fatal("model failure must abort the request")
	}
}

func TestAddCocktail_Defaults(t *testing.T) {
	f := newFixture(&fakeLLM{
		response: `{"action": "add", "item": "Mule", "type": "cocktail"}`,
	})

	ctx := context.Background()
	if _, _, err := f.svc.Execute(ctx, "add a Mule"); err != nil {
		t.Fatal(err)
	}

	cocktails, _ := f.cocktails.List(ctx)
	if len(cocktails) != 1 {
		t.Fatalf("expected one cocktail, got %d", len(cocktails))
	}
	ck := cocktails[0]
	if ck.Ingredients != "TBD" {
		t.Fatalf("ingredients must default to TBD, got %q", ck.Ingredients)
	}
	if ck.Type == nil || *ck.Type != "classic" {
		t.Fatalf("type must default to classic, got %v", ck.Type)
	}
	if ck.IsSignature || ck.Is86d {
		t.Fatal("flags must default to false")
	}
}

func TestAddCocktail_SignatureType(t *testing.T) {
	f := newFixture(&fakeLLM{
		response: `{"action": "add", "item": "The Fig Old Fashioned", "type": "cocktail", "details": {"price": 16, "type": "signature"}}`,
	})

	ctx := context.Background()
	if _, _, err := f.svc.Execute(ctx, "add the Fig Old Fashioned as a signature for $16"); err != nil {
		t.Fatal(err)
	}

	cocktails, _ := f.cocktails.List(ctx)
	ck := cocktails[0]
	if !ck.IsSignature {
		t.Fatal("signature cocktails must set is_signature")
	}
	if ck.Price == nil || *ck.Price != 16 {
		t.Fatalf("unexpected price %v", ck.Price)
	}
}

func TestDeleteSpecial_IsSoft(t *testing.T) {
	f := newFixture(&fakeLLM{
		response: `{"action": "delete", "item": "happy hour", "type": "special"}`,
	})

	ctx := context.Background()
	_ = f.specials.Create(ctx, &special.Special{Name: "Happy Hour Special", IsActive: true})

	if _, _, err := f.svc.Execute(ctx, "remove the happy hour special"); err != nil {
		t.Fatal(err)
	}

	specials, _ := f.specials.List(ctx)
	if len(specials) != 1 {
		t.Fatal("soft delete must keep the row")
	}
	if specials[0].IsActive {
		t.Fatal("special must be deactivated")
	}
}

func TestUnknownActionFails(t *testing.T) {
	f := newFixture(&fakeLLM{
		response: `{"action": "delete", "item": "Malbec", "type": "wine"}`,
	})

	_, _, err := f.svc.Execute(context.Background(), "delete the Malbec")
	if err == nil {
		t.Fatal("wine has no delete action, expected an error")
	}
}

// --------------------------------------------------
// Route behavior
// --------------------------------------------------

func setupNLPRouter(f *fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/parse-nlp-command", NewHandler(f.svc).Parse)
	return r
}

func TestParseRoute_MissingCommand(t *testing.T) {
	router := setupNLPRouter(newFixture(&fakeLLM{}))

	req := httptest.NewRequest("POST", "/api/parse-nlp-command", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestParseRoute_NonJSONModelOutputIs500(t *testing.T) {
	router := setupNLPRouter(newFixture(&fakeLLM{response: "no json here"}))

	req := httptest.NewRequest("POST", "/api/parse-nlp-command",
		bytes.NewBufferString(`{"command": "86 the Malbec"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestParseRoute_SuccessEnvelope(t *testing.T) {
	f := newFixture(&fakeLLM{
		response: `{"action": "add", "item": "Mule", "type": "cocktail"}`,
	})
	router := setupNLPRouter(f)

	req := httptest.NewRequest("POST", "/api/parse-nlp-command",
		bytes.NewBufferString(`{"command": "add a Mule"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["success"] != true {
		t.Fatal("expected success=true")
	}
	if resp["original_command"] != "add a Mule" {
		t.Fatalf("unexpected original_command %v", resp["original_command"])
	}
	if resp["parsed_command"] == nil || resp["result"] == nil {
		t.Fatal("envelope must include parsed_command and result")
	}
}
