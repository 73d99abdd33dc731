package converters_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/darianmavgo/mkinsert/config"
	"github.com/darianmavgo/mkinsert/converters"
	_ "github.com/darianmavgo/mkinsert/converters/all"
	"github.com/darianmavgo/mkinsert/products"
)

const csvHeader = "id,name,description,price,stock,category_id,image_url,brand,variants,store_type,featured\n"

func setup(t *testing.T, input string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Input = filepath.Join(dir, config.DefaultInput)
	cfg.Output = filepath.Join(dir, config.DefaultOutput)
	if err := os.WriteFile(cfg.Input, []byte(input), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return cfg
}

func TestDrivers(t *testing.T) {
	want := []string{"csv", "excel", "html", "json"}
	if got := converters.Drivers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Drivers() = %v, want %v", got, want)
	}
}

func TestOpenUnknownSource(t *testing.T) {
	_, err := converters.Open("parquet", strings.NewReader(""), nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), `"parquet"`) || !strings.Contains(err.Error(), "converters/all") {
		t.Errorf("unexpected error %q", err)
	}
}

func TestDriverFor(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"all_products.csv", "csv", false},
		{"DATA.CSV", "csv", false},
		{"catalog.xlsx", "excel", false},
		{"export.htm", "html", false},
		{"products.json", "json", false},
		{"products.txt", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := converters.DriverFor(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("DriverFor(%q) = %q, %v; want %q, err=%v", tt.path, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestExportInsert(t *testing.T) {
	cfg := setup(t, csvHeader+
		`1,Widget,,9.99,5,2,http://x/y.png,Acme,"{""color"":""red""}",online,t`+"\n"+
		`2,Gizmo,small,1.50,0,3,,,,store,f`+"\n")

	n, err := converters.ExportInsert(cfg)
	if err != nil {
		t.Fatalf("ExportInsert failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 products, got %d", n)
	}

	got, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "INSERT INTO products (id, name, description, price, stock, category_id, image_url, brand, variants, store_type, featured)\n" +
		"VALUES\n" +
		`(1, 'Widget', NULL, 9.99, 5, 2, 'http://x/y.png', 'Acme', '{"color":"red"}'::jsonb, 'online', true),` + "\n" +
		`(2, 'Gizmo', 'small', 1.50, 0, 3, NULL, NULL, ''::jsonb, 'store', false);`
	if string(got) != want {
		t.Errorf("output mismatch:\n got %s\nwant %s", got, want)
	}

	info, err := os.Stat(cfg.Output)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("expected mode 0644, got %v", info.Mode().Perm())
	}
}

func TestExportInsertHeaderOnly(t *testing.T) {
	cfg := setup(t, csvHeader)

	n, err := converters.ExportInsert(cfg)
	if err != nil {
		t.Fatalf("ExportInsert failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 products, got %d", n)
	}
	got, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.HasSuffix(string(got), ")\nVALUES\n;") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestExportInsertMissingInput(t *testing.T) {
	cfg := config.DefaultConfig()
	dir := t.TempDir()
	cfg.Input = filepath.Join(dir, "absent.csv")
	cfg.Output = filepath.Join(dir, "out.sql")

	_, err := converters.ExportInsert(cfg)
	var ae *products.AccessError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AccessError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
	if _, err := os.Stat(cfg.Output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output should not exist, stat err = %v", err)
	}
}

func TestExportInsertSchemaErrorLeavesNoOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing column", "id,name\n1,a\n"},
		{"short record", csvHeader + "1,a,,1,1,1,,,{},x,t\n2,b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := setup(t, tt.input)

			_, err := converters.ExportInsert(cfg)
			var se *products.SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("expected SchemaError, got %v", err)
			}
			if _, err := os.Stat(cfg.Output); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("output should not exist, stat err = %v", err)
			}
			assertNoTempFiles(t, filepath.Dir(cfg.Output))
		})
	}
}

func TestExportInsertKeepsPreviousOutputOnFailure(t *testing.T) {
	cfg := setup(t, "id,name\n1,a\n")
	if err := os.WriteFile(cfg.Output, []byte("previous"), 0644); err != nil {
		t.Fatalf("failed to seed output: %v", err)
	}

	if _, err := converters.ExportInsert(cfg); err == nil {
		t.Fatal("expected error")
	}
	got, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(got) != "previous" {
		t.Errorf("previous output was modified: %q", got)
	}
}

func TestExportInsertOptions(t *testing.T) {
	cfg := setup(t, csvHeader+"1,Bob's,,1,1,1,,,{},x,t\n")
	cfg.Table = "public.products"
	cfg.EscapeQuotes = true

	if _, err := converters.ExportInsert(cfg); err != nil {
		t.Fatalf("ExportInsert failed: %v", err)
	}
	got, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(got), "INSERT INTO public.products (") {
		t.Errorf("table option ignored: %s", got)
	}
	if !strings.Contains(string(got), "'Bob''s'") {
		t.Errorf("escape option ignored: %s", got)
	}
}

func TestExportInsertBareQuote(t *testing.T) {
	cfg := setup(t, csvHeader+`1,12" Pizza Stone,,9.99,5,2,,Acme,{},online,t`+"\n")

	if _, err := converters.ExportInsert(cfg); err != nil {
		t.Fatalf("ExportInsert failed: %v", err)
	}
	got, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := `(1, '12" Pizza Stone', NULL, 9.99, 5, 2, NULL, 'Acme', '{}'::jsonb, 'online', true);`
	if !strings.HasSuffix(string(got), want) {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestExportInsertDelimiter(t *testing.T) {
	cfg := setup(t, strings.ReplaceAll(csvHeader, ",", ";")+"1;Widget;;9,99;5;2;;Acme;{};online;t\n")
	cfg.Delimiter = ";"

	n, err := converters.ExportInsert(cfg)
	if err != nil {
		t.Fatalf("ExportInsert failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 product, got %d", n)
	}
	got, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(got), "(1, 'Widget', NULL, 9,99, 5, 2, NULL, 'Acme', '{}'::jsonb, 'online', true);") {
		t.Errorf("delimiter option ignored:\n%s", got)
	}
}

func TestExportInsertJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Input = filepath.Join(dir, "products.json")
	cfg.Output = filepath.Join(dir, config.DefaultOutput)
	doc := `{"produits": [{"id": 1, "name": "Widget", "description": null, "price": 9.99, "stock": 5,
		"category_id": 2, "image_url": "", "brand": "Acme", "variants": {"color": "red"},
		"store_type": "online", "featured": true}]}`
	if err := os.WriteFile(cfg.Input, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	if _, err := converters.ExportInsert(cfg); err != nil {
		t.Fatalf("ExportInsert failed: %v", err)
	}
	got, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := `(1, 'Widget', NULL, 9.99, 5, 2, NULL, 'Acme', '{"color":"red"}'::jsonb, 'online', true);`
	if !strings.HasSuffix(string(got), want) {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}
