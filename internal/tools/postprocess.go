package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dgallion1/docsplit/internal/doctree"
	"github.com/dgallion1/docsplit/internal/search"
)

var (
	thinkRe  = regexp.MustCompile(`(?s)<think>.*?</think>\s*`)
	recordRe = regexp.MustCompile(`(?s)\{.*?"position":\s*".*?".*?"suggestion":\s*".*?".*?\}`)
)

// PostProcessRequest ties review comments produced by a model back to the
// paragraphs of the reviewed document.
type PostProcessRequest struct {
	SchemeJSON string `json:"scheme_json" jsonschema:"heading tree JSON produced by docx_split"`
	LLMResult  string `json:"llm_result" jsonschema:"model output containing {\"position\": ..., \"suggestion\": ...} records"`
	Reference  string `json:"reference" jsonschema:"reference copied onto every record"`
	Level      string `json:"level" jsonschema:"severity level copied onto every record"`
}

// Record is one review comment. It keeps every key found in the model
// output and adds reference, level and paragraph_no.
type Record map[string]any

// PostProcessResponse holds the resolved records in model output order.
type PostProcessResponse struct {
	Result []Record `json:"result"`
}

// PostProcess extracts the records from the model output and resolves each
// record's position to the paragraph number of the first heading that
// contains it.
func (s *Service) PostProcess(ctx context.Context, req PostProcessRequest) (PostProcessResponse, error) {
	defer s.stats.Since(ToolPostProcess, time.Now())

	forest, err := doctree.Decode([]byte(RemoveThink(req.SchemeJSON)))
	if err != nil {
		return PostProcessResponse{}, err
	}

	records := ExtractRecords(req.LLMResult)
	resolved := 0
	for _, rec := range records {
		rec["reference"] = req.Reference
		rec["level"] = req.Level
		rec["paragraph_no"] = s.defaultParagraphNo
		if nodes := search.FindContaining(forest, positionOf(rec)); len(nodes) > 0 {
			rec["paragraph_no"] = nodes[0].ParagraphNo
			resolved++
		}
	}

	s.log.InfoContext(ctx, "post-processed model output", "tool", ToolPostProcess, "records", len(records), "resolved", resolved)
	return PostProcessResponse{Result: records}, nil
}

// RemoveThink drops <think>...</think> blocks and the whitespace after them.
func RemoveThink(text string) string {
	return thinkRe.ReplaceAllString(text, "")
}

// ExtractRecords finds the record literals in text. Literals are read as
// JSON first and as a YAML flow mapping second, which also accepts
// single-quoted strings; anything else is skipped.
func ExtractRecords(text string) []Record {
	records := []Record{}
	for _, m := range recordRe.FindAllString(text, -1) {
		var rec Record
		if err := json.Unmarshal([]byte(m), &rec); err != nil {
			rec = nil
			if err := yaml.Unmarshal([]byte(m), &rec); err != nil {
				continue
			}
		}
		if rec == nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func positionOf(rec Record) string {
	switch v := rec["position"].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
