package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/genesetexpander/pkg/db"
	"github.com/yumyai/genesetexpander/pkg/enrich"
	"github.com/yumyai/genesetexpander/pkg/model"
)

// Five query genes fully inside SETA, which also holds 301 and 302.
const handlerGMT = "SETA\tpathway a\t1\t2\t3\t4\t5\t301\t302\n" +
	"FILLER\tunrelated\t" +
	"100\t101\t102\t103\t104\t105\t106\t107\t108\t109\t110\t111\t112\t113\t114\t115\t116\t117\t118\t119\t" +
	"120\t121\t122\t123\t124\t125\t126\t127\t128\t129\t130\t131\t132\t133\t134\t135\t136\t137\t138\t139\n"

func newTestContext(t *testing.T) *ExpanderContext {
	t.Helper()

	gmt := path.Join(t.TempDir(), "c2.gmt")
	if err := os.WriteFile(gmt, []byte(handlerGMT), 0o644); err != nil {
		t.Fatalf("write gmt: %v", err)
	}

	engine := enrich.NewEngine(enrich.DefaultConfig())
	return &ExpanderContext{
		Expander: enrich.NewExpander(engine, db.NewGeneSetDB(db.GMTFile{Path: gmt})),
	}
}

func postQuery(t *testing.T, ectx *ExpanderContext, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/transform", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ectx.TransformHandler(rr, req)
	return rr
}

func TestTransformHandler(t *testing.T) {
	ectx := newTestContext(t)

	body := `{
		"genes": [
			{"gene_id": "NCBIGene:1", "identifiers": {"entrez": "NCBIGene:1"}},
			{"gene_id": "NCBIGene:2", "identifiers": {"entrez": "NCBIGene:2"}},
			{"gene_id": "NCBIGene:3", "identifiers": {"entrez": "NCBIGene:3"}},
			{"gene_id": "NCBIGene:4", "identifiers": {"entrez": "NCBIGene:4"}},
			{"gene_id": "NCBIGene:5", "identifiers": {"entrez": "NCBIGene:5"}}
		],
		"controls": [{"name": "max p-value", "value": "0.001"}]
	}`

	rr := postQuery(t, ectx, body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var genes []model.Gene
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &genes))
	require.Len(t, genes, 7)
	assert.Equal(t, "NCBIGene:301", genes[5].GeneID)
	assert.Equal(t, "NCBIGene:302", genes[6].GeneID)

	require.Len(t, genes[5].Attributes, 4)
	assert.Equal(t, "gene set", genes[5].Attributes[0].Name)
	assert.Equal(t, "SETA", genes[5].Attributes[0].Value)
	assert.Contains(t, genes[5].Attributes[0].URL, "SETA")
	assert.Empty(t, genes[0].Attributes)
}

func TestTransformHandlerNoEnrichment(t *testing.T) {
	ectx := newTestContext(t)

	rr := postQuery(t, ectx, `{"genes": [{"gene_id": "1"}], "controls": []}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var genes []model.Gene
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &genes))
	require.Len(t, genes, 1)
	assert.Equal(t, "1", genes[0].GeneID)
}

func TestTransformHandlerBadBody(t *testing.T) {
	ectx := newTestContext(t)

	rr := postQuery(t, ectx, `{"genes": [`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postQuery(t, ectx, `{"genes": [null]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

type failingExpander struct{}

func (failingExpander) Expand(context.Context, model.Query) (*enrich.Result, error) {
	return nil, errors.New("load gene sets: gene set file does not exist")
}

func (failingExpander) Info() model.TransformerInfo {
	return enrich.DefaultConfig().Info
}

func TestTransformHandlerFailsWhole(t *testing.T) {
	ectx := &ExpanderContext{Expander: failingExpander{}}

	rr := postQuery(t, ectx, `{"genes": [{"gene_id": "1"}]}`)
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "gene set file does not exist")
}

func TestTransformerInfoHandler(t *testing.T) {
	ectx := newTestContext(t)

	rr := httptest.NewRecorder()
	ectx.TransformerInfoHandler(rr, httptest.NewRequest(http.MethodGet, "/transformer_info", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var info model.TransformerInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, enrich.DefaultName, info.Name)
	assert.Equal(t, "expander", info.Function)
	require.Len(t, info.Parameters, 2)
	assert.Equal(t, "max q-value", info.Parameters[1].Name)
}

func TestHealthCheck(t *testing.T) {
	ectx := newTestContext(t)

	rr := httptest.NewRecorder()
	ectx.HealthCheck(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Health)
	assert.Equal(t, enrich.DefaultName, resp.Service)
}
