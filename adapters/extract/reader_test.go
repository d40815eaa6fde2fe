package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"censusboard/domain/core"
)

// writeEUCKR writes a UTF-8 string to path re-encoded as EUC-KR, the
// encoding the published extracts ship with.
func writeEUCKR(t *testing.T, path, content string) {
	t.Helper()

	encoded, _, err := transform.String(korean.EUCKR.NewEncoder(), content)
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
}

func fixturePath(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extract.csv")
	writeEUCKR(t, path, content)
	return path
}

const monthlyFixture = `행정구역,2025년05월_총인구수,2025년05월_계_0세,2025년05월_계_1세
전국 (0000000000),"51,000,000","200,000","210,000"
서울특별시 (1100000000),"9,330,000","40,000","42,000"
부산광역시 (2600000000),"3,270,000","12,000","13,000"
인천광역시 (2800000000),"3,030,000","15,000","16,000"
`

func TestLoadNormalizesExtract(t *testing.T) {
	loader := NewLoader(DefaultConfig())

	table, err := loader.Load(fixturePath(t, monthlyFixture))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("expected 3 rows after dropping the nationwide row, got %d", table.Len())
	}

	first := table.Rows[0]
	if first.Region != "서울특별시" {
		t.Errorf("expected region code stripped to 서울특별시, got %q", first.Region)
	}
	if first.Total != 9330000 {
		t.Errorf("expected total 9330000, got %d", first.Total)
	}
	if first.Ages[0] != 40000 || first.Ages[1] != 42000 {
		t.Errorf("unexpected age counts: %v", first.Ages)
	}

	if len(table.AgeKeys) != 2 || table.AgeKeys[0] != 0 || table.AgeKeys[1] != 1 {
		t.Errorf("expected ascending age keys [0 1], got %v", table.AgeKeys)
	}
}

func TestLoadNumericFieldsNeverNegative(t *testing.T) {
	fixture := `행정구역,2025년05월_총인구수,2025년05월_계_0세,2025년05월_계_1세
서울특별시 (1100000000),"9,330,000",,"-42"
`
	loader := NewLoader(DefaultConfig())

	table, err := loader.Load(fixturePath(t, fixture))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	row := table.Rows[0]
	if row.Ages[0] != 0 {
		t.Errorf("empty age cell should coerce to 0, got %d", row.Ages[0])
	}
	if row.Ages[1] != 0 {
		t.Errorf("unparseable age cell should coerce to 0, got %d", row.Ages[1])
	}
	for age, count := range row.Ages {
		if count < 0 {
			t.Errorf("age %d has negative count %d", age, count)
		}
	}
}

func TestNationwideDropIsIdempotent(t *testing.T) {
	loader := NewLoader(DefaultConfig())

	withNationwide, err := loader.Load(fixturePath(t, monthlyFixture))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// The same extract with the aggregate row already stripped.
	stripped := `행정구역,2025년05월_총인구수,2025년05월_계_0세,2025년05월_계_1세
서울특별시 (1100000000),"9,330,000","40,000","42,000"
부산광역시 (2600000000),"3,270,000","12,000","13,000"
인천광역시 (2800000000),"3,030,000","15,000","16,000"
`
	alreadyStripped, err := loader.Load(fixturePath(t, stripped))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if withNationwide.Len() != alreadyStripped.Len() {
		t.Errorf("drop is not idempotent: %d vs %d rows",
			withNationwide.Len(), alreadyStripped.Len())
	}
}

func TestLoadEmptyExtract(t *testing.T) {
	fixture := `행정구역,2025년05월_총인구수,2025년05월_계_0세
전국 (0000000000),"51,000,000","200,000"
`
	loader := NewLoader(DefaultConfig())

	table, err := loader.Load(fixturePath(t, fixture))
	if err != nil {
		t.Fatalf("a file with zero data rows is not an error: %v", err)
	}
	if !table.IsEmpty() {
		t.Errorf("expected empty table, got %d rows", table.Len())
	}
}

func TestLoadMissingTotalColumn(t *testing.T) {
	fixture := `행정구역,2025년05월_계_0세
서울특별시 (1100000000),"40,000"
`
	loader := NewLoader(DefaultConfig())

	table, err := loader.Load(fixturePath(t, fixture))
	if err == nil {
		t.Fatal("expected a schema error for missing total column")
	}
	if !errors.Is(err, core.ErrNoTotalColumn) {
		t.Errorf("expected ErrNoTotalColumn, got %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("no partial rows may be returned on a failed load, got %d", table.Len())
	}
}

func TestLoadFileNotFound(t *testing.T) {
	loader := NewLoader(DefaultConfig())

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, core.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
	if !core.IsLoadError(err) {
		t.Errorf("file-not-found must be a load error, got %v", err)
	}
}

func TestLoadDuplicateRegionsPreserved(t *testing.T) {
	fixture := `행정구역,2025년05월_총인구수,2025년05월_계_0세
서울특별시 (1100000000),"9,330,000","40,000"
서울특별시 (1100000000),"9,330,000","40,000"
`
	loader := NewLoader(DefaultConfig())

	table, err := loader.Load(fixturePath(t, fixture))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("duplicate regions must be preserved, got %d rows", table.Len())
	}
}

func TestLoadUTF8Extract(t *testing.T) {
	config := DefaultConfig()
	config.Encoding = "utf-8"
	loader := NewLoader(config)

	path := filepath.Join(t.TempDir(), "extract.csv")
	content := `행정구역,2025년05월_총인구수,2025년05월_계_0세
서울특별시 (1100000000),"9,330,000","40,000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	table, err := loader.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if table.Rows[0].Region != "서울특별시" {
		t.Errorf("unexpected region: %q", table.Rows[0].Region)
	}
}

func TestLoadBandedExtract(t *testing.T) {
	// The population-change extract uses banded age columns.
	fixture := `행정구역,2025년05월_총인구수,2025년05월_세대수,2025년05월_계_0~9세,2025년05월_계_10~19세
전국 (0000000000),"51,000,000","23,000,000","3,300,000","4,600,000"
서울특별시 (1100000000),"9,330,000","4,400,000","500,000","700,000"
`
	config := DefaultConfig()
	config.IgnoreTokens = []string{"세대수", "구성비"}
	loader := NewLoader(config)

	table, err := loader.Load(fixturePath(t, fixture))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(table.AgeKeys) != 2 || table.AgeKeys[0] != 0 || table.AgeKeys[1] != 10 {
		t.Errorf("expected band start years [0 10], got %v", table.AgeKeys)
	}
	if table.Rows[0].Ages[10] != 700000 {
		t.Errorf("expected band 10~19 count 700000, got %d", table.Rows[0].Ages[10])
	}
}
