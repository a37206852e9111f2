package catalog

import (
	"errors"
	"math"
)

// Vehicle status values.
const (
	StatusDisponivel   = "Disponível"
	StatusIndisponivel = "Indisponível"
)

// Drivetrain values.
const (
	TracaoDianteira = "Dianteira"
	TracaoTraseira  = "Traseira"
	TracaoIntegral  = "Integral"
)

// ErrCarroNotFound is returned when a vehicle ID does not exist.
var ErrCarroNotFound = errors.New("carro not found")

// Carro is a vehicle in the inventory.
//
// The validate tags describe the full payload contract for both create and
// update. Numeric "at least zero" fields use range tags rather than required,
// since zero is a legitimate value (a new car has quilometragem 0). Ano is
// additionally capped at the current year by a custom validator registered at
// the API boundary.
type Carro struct {
	ID              int64   `json:"id"`
	Marca           string  `json:"marca" validate:"required,max=50"`
	Modelo          string  `json:"modelo" validate:"required,max=100"`
	Categoria       string  `json:"categoria" validate:"required,max=50"`
	Ano             int     `json:"ano" validate:"gte=1886,notfuture"`
	Cor             string  `json:"cor" validate:"required,max=30"`
	Quilometragem   int     `json:"quilometragem" validate:"gte=0"`
	Potencia        int     `json:"potencia" validate:"gte=0"`
	Motor           string  `json:"motor" validate:"required,max=50"`
	ZeroACem        float64 `json:"zero_a_cem" validate:"gte=0"`
	VelocidadeFinal int     `json:"velocidade_final" validate:"gte=0"`
	Preco           float64 `json:"preco" validate:"gte=0"`
	NumeroPortas    int     `json:"numero_portas" validate:"gte=2,lte=5"`
	TipoTracao      string  `json:"tipo_tracao" validate:"oneof=Dianteira Traseira Integral"`
	ConsumoMedio    string  `json:"consumo_medio" validate:"required,max=20"`
	Status          string  `json:"status" validate:"oneof=Disponível Indisponível"`
	Caracteristicas string  `json:"caracteristicas" validate:"omitempty,max=1000"`
}

// Normalize canonicalises incoming payload values before validation.
// Preco is a monetary amount with centavo precision; extra decimals are
// rounded, not rejected.
func (c *Carro) Normalize() {
	c.Preco = math.Round(c.Preco*100) / 100
}
