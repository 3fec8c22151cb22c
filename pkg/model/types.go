package model

import (
	"encoding/json"
	"strings"
)

// GeneIdentifiers holds cross-reference ids of a gene. Entrez is the one used
// for gene-set matching, e.g. "NCBIGene:7157".
type GeneIdentifiers struct {
	Entrez  string `json:"entrez,omitempty"`
	HGNC    string `json:"hgnc,omitempty"`
	MIM     string `json:"mim,omitempty"`
	Ensembl string `json:"ensembl,omitempty"`
}

// Attribute is a provenance record attached to a gene.
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
}

type Gene struct {
	GeneID      string           `json:"gene_id"`
	Identifiers *GeneIdentifiers `json:"identifiers,omitempty"`
	Attributes  []Attribute      `json:"attributes,omitempty"`
}

// Control is a named value sent along with a query. Values arrive as strings
// and are parsed against the typed control schema of the engine.
type Control struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UnmarshalJSON also accepts a bare JSON number or boolean as the value.
func (c *Control) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Name = raw.Name
	c.Value = ""
	if len(raw.Value) == 0 || string(raw.Value) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Value, &s); err == nil {
		c.Value = s
		return nil
	}
	c.Value = strings.TrimSpace(string(raw.Value))
	return nil
}

// Return from the transport layer
type Query struct {
	Genes    []*Gene   `json:"genes"`
	Controls []Control `json:"controls"`
}

type Parameter struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Default string `json:"default" yaml:"default"`
}

// TransformerInfo describes the expander for discovery and registration.
type TransformerInfo struct {
	Name               string      `json:"name" yaml:"name"`
	Function           string      `json:"function" yaml:"function"`
	Operation          string      `json:"operation" yaml:"operation"`
	UILabel            string      `json:"ui_label" yaml:"ui_label"`
	SourceURL          string      `json:"source_url" yaml:"source_url"`
	Description        string      `json:"description" yaml:"description"`
	Parameters         []Parameter `json:"parameters" yaml:"parameters"`
	RequiredAttributes []string    `json:"required_attributes" yaml:"required_attributes"`
}
