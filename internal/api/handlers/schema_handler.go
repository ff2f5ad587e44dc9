package handlers

import (
	"net/http"

	"github.com/Cheertaboi/marketplace-schema/internal/schema"
)

type ReferenceView struct {
	Table    string `json:"table"`
	OnDelete string `json:"on_delete"`
}

type ColumnView struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	PrimaryKey bool           `json:"primary_key,omitempty"`
	Nullable   bool           `json:"nullable"`
	Unique     bool           `json:"unique,omitempty"`
	Default    string         `json:"default,omitempty"`
	Check      string         `json:"check,omitempty"`
	References *ReferenceView `json:"references,omitempty"`
}

type TableView struct {
	Name    string       `json:"name"`
	Entity  string       `json:"entity"`
	Columns []ColumnView `json:"columns"`
}

type SchemaHandler struct {
	tables []TableView
}

func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{tables: tableViews(schema.Postgres)}
}

func tableViews(d schema.Dialect) []TableView {
	tables := schema.Tables()
	views := make([]TableView, len(tables))
	for i, t := range tables {
		cols := make([]ColumnView, len(t.Columns))
		for j, c := range t.Columns {
			cols[j] = ColumnView{
				Name:       c.Name,
				Type:       d.TypeName(c),
				PrimaryKey: c.PrimaryKey,
				Nullable:   c.Nullable,
				Unique:     c.Unique,
				Default:    c.Default,
				Check:      c.Check,
			}
			if ref := c.References; ref != nil {
				cols[j].References = &ReferenceView{Table: ref.Table, OnDelete: string(ref.OnDelete)}
			}
		}
		views[i] = TableView{Name: t.Name, Entity: t.Entity, Columns: cols}
	}
	return views
}

// Tables handles GET /schema
func (h *SchemaHandler) Tables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tables)
}

// DDL handles GET /schema/ddl?dialect=postgres|sqlite
func (h *SchemaHandler) DDL(w http.ResponseWriter, r *http.Request) {
	d := schema.Postgres
	if q := r.URL.Query().Get("dialect"); q != "" {
		parsed, err := schema.ParseDialect(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_dialect", err.Error())
			return
		}
		d = parsed
	}

	w.Header().Set("Content-Type", "application/sql; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(schema.Script(d)))
}
