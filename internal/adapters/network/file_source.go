package network

import (
	"context"
	"errors"
	"fmt"
	"os"
	"route-cost-service/internal/domain"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// NetworkFile is the on-disk YAML layout of a network.
//
//	products:
//	  - {id: A, center: C1, weight: 3}
//	distances:
//	  - {from: C1, to: L1, distance: 3}
type NetworkFile struct {
	Products  []ProductEntry  `yaml:"products" validate:"dive"`
	Distances []DistanceEntry `yaml:"distances" validate:"required,dive"`
}

type ProductEntry struct {
	ID     string  `yaml:"id" validate:"required"`
	Center string  `yaml:"center" validate:"required,oneof=C1 C2 C3"`
	Weight float64 `yaml:"weight" validate:"gt=0"`
}

type DistanceEntry struct {
	From     string  `yaml:"from" validate:"required,oneof=L1 C1 C2 C3,nefield=To"`
	To       string  `yaml:"to" validate:"required,oneof=L1 C1 C2 C3"`
	Distance float64 `yaml:"distance" validate:"gte=0"`
}

// FileSource loads the network from a YAML file.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) LoadNetwork(ctx context.Context) (*domain.Network, error) {
	if strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("load network file: path must not be empty")
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load network file: read %q: %w", s.Path, err)
	}

	net, err := ParseNetworkFile(data)
	if err != nil {
		return nil, fmt.Errorf("load network file %q: %w", s.Path, err)
	}
	return net, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseNetworkFile decodes, validates and builds a network from YAML.
func ParseNetworkFile(data []byte) (*domain.Network, error) {
	var f NetworkFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	products := make([]domain.Product, 0, len(f.Products))
	for _, p := range f.Products {
		products = append(products, domain.Product{
			ID:     p.ID,
			Center: domain.Location(p.Center),
			Weight: decimal.NewFromFloat(p.Weight),
		})
	}

	distances := make([]domain.Distance, 0, len(f.Distances))
	for _, d := range f.Distances {
		distances = append(distances, domain.Distance{
			From:  domain.Location(d.From),
			To:    domain.Location(d.To),
			Value: decimal.NewFromFloat(d.Distance),
		})
	}

	return domain.NewNetwork(products, distances)
}

// EncodeNetworkFile renders net in the YAML layout read by FileSource.
func EncodeNetworkFile(net *domain.Network) ([]byte, error) {
	var f NetworkFile
	for _, p := range net.Products() {
		f.Products = append(f.Products, ProductEntry{
			ID:     p.ID,
			Center: string(p.Center),
			Weight: p.Weight.InexactFloat64(),
		})
	}
	for _, d := range net.Distances() {
		f.Distances = append(f.Distances, DistanceEntry{
			From:     string(d.From),
			To:       string(d.To),
			Distance: d.Value.InexactFloat64(),
		})
	}
	return yaml.Marshal(f)
}
