package enrich

import (
	"strconv"

	"github.com/yumyai/genesetexpander/logger"
	"github.com/yumyai/genesetexpander/pkg/model"
	"go.uber.org/zap"
)

const (
	DefaultName      = "MSigDB hypergeometric enrichment expander"
	DefaultCardURL   = "http://software.broadinstitute.org/gsea/msigdb/cards/%s.html"
	defaultSourceURL = "http://software.broadinstitute.org/gsea/downloads.jsp"
)

// ControlKey identifies one recognized control. Every control is a double.
type ControlKey int

const (
	ControlMaxPValue ControlKey = iota
	ControlMaxQValue
)

type controlDef struct {
	key      ControlKey
	name     string
	fallback float64
}

// Order matters: it is the order of the parameters in TransformerInfo.
var controlSchema = []controlDef{
	{key: ControlMaxPValue, name: "max p-value", fallback: 1e-5},
	{key: ControlMaxQValue, name: "max q-value", fallback: 0.05},
}

// Controls are the thresholds of one expansion.
type Controls struct {
	MaxPValue float64
	MaxQValue float64
}

func DefaultControls() Controls {
	return Controls{
		MaxPValue: controlSchema[ControlMaxPValue].fallback,
		MaxQValue: controlSchema[ControlMaxQValue].fallback,
	}
}

func (c *Controls) set(key ControlKey, v float64) {
	switch key {
	case ControlMaxPValue:
		c.MaxPValue = v
	case ControlMaxQValue:
		c.MaxQValue = v
	}
}

// Config is fixed when the engine is built and never changed afterwards.
type Config struct {
	// Name is written as the source of every provenance attribute.
	Name string
	// ControlNames maps each control to the name callers send it under.
	ControlNames map[ControlKey]string
	// CardURL is a fmt template taking the gene set id.
	CardURL string
	Info    model.TransformerInfo
}

func DefaultConfig() Config {
	names := make(map[ControlKey]string, len(controlSchema))
	for _, def := range controlSchema {
		names[def.key] = def.name
	}

	cfg := Config{
		Name:         DefaultName,
		ControlNames: names,
		CardURL:      DefaultCardURL,
	}
	cfg.Info = defaultInfo(cfg)
	return cfg
}

func defaultInfo(cfg Config) model.TransformerInfo {
	params := make([]model.Parameter, 0, len(controlSchema))
	for _, def := range controlSchema {
		params = append(params, model.Parameter{
			Name:    cfg.controlName(def),
			Type:    "double",
			Default: strconv.FormatFloat(def.fallback, 'g', -1, 64),
		})
	}

	return model.TransformerInfo{
		Name:               cfg.Name,
		Function:           "expander",
		Operation:          "enrichment",
		UILabel:            "HyperGeomEnrich",
		SourceURL:          defaultSourceURL,
		Description:        "Gene-list expander that adds all genes in pathways enriched for genes in the input",
		Parameters:         params,
		RequiredAttributes: []string{"identifiers.entrez", "gene_symbol"},
	}
}

// WithInfo derives a config from a metadata record. The engine name comes from
// info.Name and control names are taken positionally from info.Parameters.
func WithInfo(info model.TransformerInfo) Config {
	cfg := DefaultConfig()
	if info.Name != "" {
		cfg.Name = info.Name
	}
	for i, def := range controlSchema {
		if i < len(info.Parameters) && info.Parameters[i].Name != "" {
			cfg.ControlNames[def.key] = info.Parameters[i].Name
		}
	}
	cfg.Info = info
	return cfg
}

func (cfg Config) controlName(def controlDef) string {
	if name, ok := cfg.ControlNames[def.key]; ok && name != "" {
		return name
	}
	return def.name
}

// ParseControls reads the recognized controls out of a query. Unknown names
// are ignored; missing or unparseable values fall back to the defaults.
func (cfg Config) ParseControls(in []model.Control) Controls {
	values := make(map[string]string, len(in))
	for _, c := range in {
		values[c.Name] = c.Value
	}

	controls := DefaultControls()
	for _, def := range controlSchema {
		name := cfg.controlName(def)
		raw, ok := values[name]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Warn("Unparseable control, using default",
				zap.String("control", name), zap.String("value", raw), zap.Float64("default", def.fallback))
			continue
		}
		controls.set(def.key, v)
	}
	return controls
}
