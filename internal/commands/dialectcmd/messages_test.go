package dialectcmd

import "testing"

func TestConvertDocumentCommandValidateRequiresPaths(t *testing.T) {
	cmd := ConvertDocumentCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when paths missing")
	}

	cmd.SourcePath = "doc.tag.md"
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when output path missing")
	}

	cmd.OutputPath = "doc.md"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when both paths provided: %v", err)
	}
}

func TestConvertDocumentCommandValidateRejectsSameTarget(t *testing.T) {
	cmd := ConvertDocumentCommand{
		SourcePath: "doc.md",
		OutputPath: "doc.md",
	}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when output matches source")
	}

	cmd.OutputPath = " doc.md "
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when output matches source ignoring whitespace")
	}
}

func TestBeautifyDocumentCommandValidateRequiresSource(t *testing.T) {
	cmd := BeautifyDocumentCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when source missing")
	}

	cmd.SourcePath = "   "
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when source is blank")
	}

	cmd.SourcePath = "doc.tag.md"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when source provided: %v", err)
	}
}
