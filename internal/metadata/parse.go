package metadata

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"github.com/alfellati/ink-wrapper/internal/diag"
)

// supportedVersion is the metadata schema generation this compiler accepts.
const supportedVersion = "4"

// Parse decodes data into a Document and validates its shape. It never
// resolves type references and never touches the filesystem.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, errMissingTypeID) {
			return nil, diag.Wrap(diag.MetaMissingField, err)
		}
		return nil, diag.Newf(diag.MetaMalformedDocument, "metadata is not valid JSON: %v", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if err := d.checkVersion(); err != nil {
		return err
	}
	if strings.TrimSpace(d.Contract.Name) == "" {
		return diag.New(diag.MetaMissingField, "contract.name is required")
	}
	if d.Source.Hash != "" {
		if _, err := ParseHash(d.Source.Hash); err != nil {
			return err
		}
	}
	for i, ctor := range d.Spec.Constructors {
		if strings.TrimSpace(ctor.Label) == "" {
			return diag.Newf(diag.MetaEmptyLabel, "constructor %d has an empty label", i)
		}
		if ctor.Selector != "" {
			if _, err := ParseSelector(ctor.Selector); err != nil {
				return err
			}
		}
	}
	for i, msg := range d.Spec.Messages {
		if strings.TrimSpace(msg.Label) == "" {
			return diag.Newf(diag.MetaEmptyLabel, "message %d has an empty label", i)
		}
		if msg.Selector != "" {
			if _, err := ParseSelector(msg.Selector); err != nil {
				return err
			}
		}
	}
	for i, ev := range d.Spec.Events {
		if strings.TrimSpace(ev.Label) == "" {
			return diag.Newf(diag.MetaEmptyLabel, "event %d has an empty label", i)
		}
	}
	seen := make(map[TypeID]struct{}, len(d.Types))
	for _, entry := range d.Types {
		if _, dup := seen[entry.ID]; dup {
			return diag.Newf(diag.MetaDuplicateTypeID, "type id %d is declared twice", entry.ID)
		}
		seen[entry.ID] = struct{}{}
		if n := entry.Type.Def.shapes(); n != 1 {
			return diag.Newf(diag.MetaBadTypeDef, "type %d declares %d definition shapes, want exactly one", entry.ID, n)
		}
	}
	return nil
}

func (d *Document) checkVersion() error {
	raw := bytes.TrimSpace(d.Version)
	if len(raw) == 0 {
		return diag.New(diag.MetaMissingField, "metadata version is missing")
	}
	// ink! 4.x пишет версию строкой "4"; принимаем и голое число
	v := strings.Trim(string(raw), `"`)
	if v != supportedVersion {
		return diag.Newf(diag.MetaUnsupportedVersion, "metadata version %s is not supported, want %s", v, supportedVersion)
	}
	return nil
}

// ParseSelector decodes a 0x-prefixed 4-byte hex selector literal.
func ParseSelector(s string) ([4]byte, error) {
	var out [4]byte
	raw, err := parseHexLiteral(s, 4)
	if err != nil {
		return out, diag.Newf(diag.MetaBadSelector, "selector %q must be 0x followed by 8 hex digits", s)
	}
	copy(out[:], raw)
	return out, nil
}

// ParseHash decodes a 0x-prefixed 32-byte hex hash literal.
func ParseHash(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := parseHexLiteral(s, 32)
	if err != nil {
		return out, diag.Newf(diag.MetaBadHash, "hash %q must be 0x followed by 64 hex digits", s)
	}
	copy(out[:], raw)
	return out, nil
}

func parseHexLiteral(s string, wantLen int) ([]byte, error) {
	rest, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return nil, errors.New("missing 0x prefix")
	}
	raw, err := hex.DecodeString(rest)
	if err != nil {
		return nil, err
	}
	if len(raw) != wantLen {
		return nil, errors.New("wrong length")
	}
	return raw, nil
}
