// Package types provides type definitions for structured data used throughout the tax document finalizer.
package types

// RecordMeta carries file-level metadata attached by the upstream
// form-recognition engine.
type RecordMeta struct {
	FileName string `json:"FileName,omitempty"`
	Type     string `json:"Type,omitempty"`
}

// RawRecord is the extraction output for a single source document: a tree of
// labeled values grouped into skills. It is read-only input; the pipeline
// never mutates it.
type RawRecord struct {
	Meta    *RecordMeta `json:"Meta,omitempty"`
	Title   string      `json:"Title,omitempty"`
	Summary []Skill     `json:"Summary,omitempty"`
}

// Skill is a named section of a RawRecord bundling the labels produced by one
// document-type template.
type Skill struct {
	SkillName string  `json:"SkillName"`
	Labels    []Label `json:"Labels,omitempty"`
}

// Label is a named field holder carrying zero or more raw values and,
// optionally, nested child labels of unbounded depth.
type Label struct {
	LabelName   string       `json:"LabelName"`
	Values      []LabelValue `json:"Values,omitempty"`
	ChildLabels []Label      `json:"ChildLabels,omitempty"`
}

// LabelValue wraps one raw extracted value.
type LabelValue struct {
	Value string `json:"Value"`
}
