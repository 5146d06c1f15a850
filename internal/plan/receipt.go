package plan

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gravitational/rtinstall/internal/logutil"
	"github.com/gravitational/trace"
)

// ReceiptPath is the fixed location the receipt is always read from and
// written to. Tests redirect currentReceiptPath via receiptPathOverride
// rather than touching the real filesystem path.
const ReceiptPath = "/nix/receipt.json"

var receiptPathOverride *string

func currentReceiptPath() string {
	if receiptPathOverride != nil {
		return *receiptPathOverride
	}
	return ReceiptPath
}

var receiptLog = logutil.New("plan")

// WriteReceipt ensures the receipt's parent directory exists, then
// atomically overwrites the receipt path with a pretty-printed JSON
// encoding of the plan followed by a trailing newline. It is called after
// every successful install, and before Install/Uninstall return any
// terminal result (Cancelled, action failure, or aggregate revert
// failure), so the receipt always reflects the exact state distribution
// the caller sees.
func WriteReceipt(p *InstallPlan) error {
	path := currentReceiptPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wrapRecordingReceipt(path, trace.ConvertSystemError(err))
	}
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return wrapSerializingReceipt(err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".receipt-*.tmp")
	if err != nil {
		return wrapRecordingReceipt(path, trace.ConvertSystemError(err))
	}
	tmpPath := tmp.Name()
	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return wrapRecordingReceipt(path, trace.ConvertSystemError(writeErr))
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return wrapRecordingReceipt(path, trace.ConvertSystemError(closeErr))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return wrapRecordingReceipt(path, trace.ConvertSystemError(err))
	}
	return nil
}

// checkpoint persists the receipt and logs, but never returns, a write
// failure: it must never replace the action/cancellation error the caller
// is already propagating.
func checkpoint(p *InstallPlan) {
	if err := WriteReceipt(p); err != nil {
		receiptLog.WithError(err).Warn("Failed to record receipt.")
	}
}

// ReadReceipt loads and version-gates the plan at the receipt path.
// engineVersion is the running binary's own version
// (internal/buildversion).
func ReadReceipt(engineVersion string) (*InstallPlan, error) {
	path := currentReceiptPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	var p InstallPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, trace.Wrap(err, "parsing receipt at %v", path)
	}
	if err := checkVersion(p.Version, engineVersion); err != nil {
		return nil, err
	}
	return &p, nil
}
