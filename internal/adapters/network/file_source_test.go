package network

import (
	"context"
	"os"
	"path/filepath"
	"route-cost-service/internal/domain"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const sampleNetwork = `
products:
  - {id: A, center: C1, weight: 3}
  - {id: G, center: C3, weight: 0.5}
distances:
  - {from: C1, to: L1, distance: 3}
  - {from: L1, to: C2, distance: 2.5}
  - {from: C3, to: L1, distance: 2}
  - {from: C1, to: C2, distance: 4}
  - {from: C1, to: C3, distance: 5}
  - {from: C2, to: C3, distance: 3}
`

func TestFileSourceLoadNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.yaml")
	if err := os.WriteFile(path, []byte(sampleNetwork), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	net, err := NewFileSource(path).LoadNetwork(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, ok := net.Product("G")
	if !ok {
		t.Fatal("product G missing")
	}
	if p.Center != domain.C3 || !p.Weight.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("product G = %+v", p)
	}

	d := net.Distance(domain.C2, domain.Hub)
	if !d.Valid || !d.Decimal.Equal(decimal.NewFromFloat(2.5)) {
		t.Errorf("distance C2-L1 = %+v, want 2.5", d)
	}
}

func TestParseNetworkFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "not yaml",
			yaml: "products: [",
			want: "parse yaml",
		},
		{
			name: "unknown center",
			yaml: strings.Replace(sampleNetwork, "center: C1", "center: C7", 1),
			want: "validate",
		},
		{
			name: "non-positive weight",
			yaml: strings.Replace(sampleNetwork, "weight: 3", "weight: 0", 1),
			want: "validate",
		},
		{
			name: "self loop",
			yaml: strings.Replace(sampleNetwork, "{from: C1, to: C2, distance: 4}", "{from: C2, to: C2, distance: 4}", 1),
			want: "validate",
		},
		{
			name: "incomplete table",
			yaml: strings.Replace(sampleNetwork, "  - {from: C2, to: C3, distance: 3}\n", "", 1),
			want: "missing distance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNetworkFile([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")).LoadNetwork(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestEncodeNetworkFileRoundTrip(t *testing.T) {
	builtin := MustBuiltin()

	data, err := EncodeNetworkFile(builtin)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := ParseNetworkFile(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if decoded.Fingerprint() != builtin.Fingerprint() {
		t.Fatalf("fingerprint changed after round trip:\n%s", data)
	}
}

func TestShippedNetworkFileMatchesBuiltin(t *testing.T) {
	net, err := NewFileSource(filepath.Join("..", "..", "..", "data", "network.yaml")).LoadNetwork(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if net.Fingerprint() != MustBuiltin().Fingerprint() {
		t.Fatal("data/network.yaml differs from the compiled-in network")
	}
}
