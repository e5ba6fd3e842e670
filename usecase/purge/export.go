package purge

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dnspurge/dnspurge/domain/model"
)

// ExportInput holds parameters for writing a run log file.
type ExportInput struct {
	Result *model.ResultSet `json:"result"` // required
	Format string           `json:"format"` // "json" or "csv"
	Dir    string           `json:"dir"`    // destination directory, empty means current
}

// ExportOutput holds the result of writing a run log file.
type ExportOutput struct {
	Path string `json:"path"`
}

// Export writes the result set to purge_log_<domain>.<format> in the
// requested directory. JSON keeps the wire shape of the result set, CSV
// writes one row per outcome with successes first.
func (u *UseCase) Export(ctx context.Context, in *ExportInput) (*ExportOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	if in.Result == nil {
		return nil, fmt.Errorf("Result is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(in.Dir, fmt.Sprintf("purge_log_%s.%s", in.Result.Domain, in.Format))
	switch in.Format {
	case "json":
		data, err := json.MarshalIndent(in.Result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode result: %w", err)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return nil, fmt.Errorf("write export: %w", err)
		}
	case "csv":
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("write export: %w", err)
		}
		w := csv.NewWriter(f)
		if err := w.Write([]string{"Type", "Status", "Message"}); err != nil {
			f.Close()
			return nil, fmt.Errorf("write export: %w", err)
		}
		for _, o := range in.Result.Outcomes() {
			if err := w.Write([]string{string(o.Type), string(o.Status), o.Message}); err != nil {
				f.Close()
				return nil, fmt.Errorf("write export: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("write export: %w", err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("write export: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported export format: %s", in.Format)
	}
	return &ExportOutput{Path: path}, nil
}
