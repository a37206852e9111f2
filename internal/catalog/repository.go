package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CarroRepository defines the interface for vehicle persistence.
type CarroRepository interface {
	Create(ctx context.Context, carro *Carro) error
	GetByID(ctx context.Context, id int64) (*Carro, error)
	List(ctx context.Context) ([]Carro, error)
	Update(ctx context.Context, carro *Carro) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// SQLiteCarroRepository implements CarroRepository using SQLite.
type SQLiteCarroRepository struct {
	db *sql.DB
}

// NewCarroRepository creates a new SQLite-backed vehicle repository.
func NewCarroRepository(db *sql.DB) *SQLiteCarroRepository {
	return &SQLiteCarroRepository{db: db}
}

const carroColumns = `id, marca, modelo, categoria, ano, cor, quilometragem,
	potencia, motor, zero_a_cem, velocidade_final, preco, numero_portas,
	tipo_tracao, consumo_medio, status, caracteristicas`

// Create inserts a new vehicle and fills in the generated ID.
func (r *SQLiteCarroRepository) Create(ctx context.Context, carro *Carro) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO carros (
			marca, modelo, categoria, ano, cor, quilometragem, potencia,
			motor, zero_a_cem, velocidade_final, preco, numero_portas,
			tipo_tracao, consumo_medio, status, caracteristicas
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		carro.Marca, carro.Modelo, carro.Categoria, carro.Ano, carro.Cor,
		carro.Quilometragem, carro.Potencia, carro.Motor, carro.ZeroACem,
		carro.VelocidadeFinal, carro.Preco, carro.NumeroPortas,
		carro.TipoTracao, carro.ConsumoMedio, carro.Status, carro.Caracteristicas,
	)
	if err != nil {
		return fmt.Errorf("creating carro: %w", err)
	}

	carro.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted carro id: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by its unique ID.
func (r *SQLiteCarroRepository) GetByID(ctx context.Context, id int64) (*Carro, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+carroColumns+" FROM carros WHERE id = ?", id)

	carro, err := scanCarro(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarroNotFound
		}
		return nil, fmt.Errorf("scanning carro: %w", err)
	}
	return carro, nil
}

// List returns all vehicles ordered by ID.
func (r *SQLiteCarroRepository) List(ctx context.Context) ([]Carro, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+carroColumns+" FROM carros ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("listing carros: %w", err)
	}
	defer rows.Close()

	carros := []Carro{}
	for rows.Next() {
		carro, err := scanCarro(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning carro: %w", err)
		}
		carros = append(carros, *carro)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating carros: %w", err)
	}
	return carros, nil
}

// Update rewrites all mutable fields of a vehicle.
func (r *SQLiteCarroRepository) Update(ctx context.Context, carro *Carro) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE carros SET
			marca = ?, modelo = ?, categoria = ?, ano = ?, cor = ?,
			quilometragem = ?, potencia = ?, motor = ?, zero_a_cem = ?,
			velocidade_final = ?, preco = ?, numero_portas = ?,
			tipo_tracao = ?, consumo_medio = ?, status = ?, caracteristicas = ?
		WHERE id = ?`,
		carro.Marca, carro.Modelo, carro.Categoria, carro.Ano, carro.Cor,
		carro.Quilometragem, carro.Potencia, carro.Motor, carro.ZeroACem,
		carro.VelocidadeFinal, carro.Preco, carro.NumeroPortas,
		carro.TipoTracao, carro.ConsumoMedio, carro.Status, carro.Caracteristicas,
		carro.ID,
	)
	if err != nil {
		return fmt.Errorf("updating carro: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrCarroNotFound
	}
	return nil
}

// Delete removes a vehicle by ID.
func (r *SQLiteCarroRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM carros WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting carro: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrCarroNotFound
	}
	return nil
}

// Count returns the total number of vehicles in the inventory.
func (r *SQLiteCarroRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM carros").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting carros: %w", err)
	}
	return count, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanCarro.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCarro(row rowScanner) (*Carro, error) {
	var c Carro
	var caracteristicas sql.NullString

	err := row.Scan(
		&c.ID, &c.Marca, &c.Modelo, &c.Categoria, &c.Ano, &c.Cor,
		&c.Quilometragem, &c.Potencia, &c.Motor, &c.ZeroACem,
		&c.VelocidadeFinal, &c.Preco, &c.NumeroPortas, &c.TipoTracao,
		&c.ConsumoMedio, &c.Status, &caracteristicas,
	)
	if err != nil {
		return nil, err
	}

	c.Caracteristicas = caracteristicas.String
	return &c, nil
}
