package catalog

import "testing"

func TestCarro_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		preco float64
		want  float64
	}{
		{"already two decimals", 145900.50, 145900.50},
		{"rounds half up", 123456.789, 123456.79},
		{"rounds down", 99.994, 99.99},
		{"whole number", 80000, 80000},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Carro{Preco: tt.preco}
			c.Normalize()
			if c.Preco != tt.want {
				t.Errorf("Normalize() preco = %v, want %v", c.Preco, tt.want)
			}
		})
	}
}
