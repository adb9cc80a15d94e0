package dom

import (
	"errors"
	"testing"
)

func TestRegisterTagDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterTag("x-first", Definition{}); err != nil {
		t.Fatalf("first RegisterTag failed: %v", err)
	}
	err := r.RegisterTag("x-first", Definition{})
	if !errors.Is(err, ErrTagDefined) {
		t.Errorf("second RegisterTag error = %v, want ErrTagDefined", err)
	}
}

func TestRegisterTagInvalidName(t *testing.T) {
	r := NewRegistry()
	err := r.RegisterTag("nohyphen", Definition{})
	if !errors.Is(err, ErrInvalidTagName) {
		t.Errorf("RegisterTag(\"nohyphen\") error = %v, want ErrInvalidTagName", err)
	}
	if r.Defined("nohyphen") {
		t.Error("invalid tag should not be defined")
	}
}

func TestNewElementBindsDefinitionAtCreation(t *testing.T) {
	r := NewRegistry()
	connected := 0
	if err := r.RegisterTag("x-thing", Definition{
		Connected: func(*Element) { connected++ },
	}); err != nil {
		t.Fatalf("RegisterTag failed: %v", err)
	}

	el, err := r.NewElement("x-thing")
	if err != nil {
		t.Fatalf("NewElement failed: %v", err)
	}
	if el.Tag() != "x-thing" {
		t.Errorf("Tag() = %q, want %q", el.Tag(), "x-thing")
	}
	if el.IsConnected() {
		t.Error("new element should be unattached")
	}

	doc := NewDocument(r)
	if err := doc.Root().AppendChild(el); err != nil {
		t.Fatalf("AppendChild failed: %v", err)
	}
	if connected != 1 {
		t.Errorf("connected callbacks = %d, want 1", connected)
	}
}

func TestNewElementUnknownTag(t *testing.T) {
	r := NewRegistry()
	el, err := r.NewElement("x-unknown")
	if err != nil {
		t.Fatalf("NewElement for unknown tag failed: %v", err)
	}

	// Attaching an undefined element must be a no-op lifecycle-wise.
	doc := NewDocument(r)
	if err := doc.Root().AppendChild(el); err != nil {
		t.Fatalf("AppendChild failed: %v", err)
	}
	if !el.IsConnected() {
		t.Error("element should be connected after attach")
	}
}

func TestNewElementInvalidName(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewElement("Bad Tag"); !errors.Is(err, ErrInvalidTagName) {
		t.Errorf("NewElement(\"Bad Tag\") error = %v, want ErrInvalidTagName", err)
	}
}
