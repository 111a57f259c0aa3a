// Package export snapshots catalog pages into Parquet and CSV files and
// uploads them to S3.
package export

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/BielosX/wombat/poke-browser/src/csv"
	"github.com/BielosX/wombat/poke-browser/src/parquet"
	"github.com/BielosX/wombat/poke-browser/src/pokeapi"
)

type ScheduleRequest struct {
	PageSize    int32 `json:"pageSize"`
	StartOffset int32 `json:"startOffset"`
	PageCount   int32 `json:"pageCount"`
}

type Schedule struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

type ScraperResult struct {
	ParquetFileName string `json:"parquetFileName"`
	CsvFileName     string `json:"csvFileName"`
	Rows            int    `json:"rows"`
}

type Catalog interface {
	ListPokemons(ctx context.Context, limit, offset int32) ([]pokeapi.PokemonResponse, error)
	GetPokemonGeneration(ctx context.Context, species pokeapi.PokemonResponseSpecies) (int32, error)
}

type Uploader interface {
	PutFile(ctx context.Context, reader io.Reader, bucket, key, contentType string) error
}

type Exporter struct {
	catalog  Catalog
	uploader Uploader
	bucket   string
	sugar    *zap.SugaredLogger
}

func NewExporter(catalog Catalog, uploader Uploader, bucket string, sugar *zap.SugaredLogger) *Exporter {
	return &Exporter{
		catalog:  catalog,
		uploader: uploader,
		bucket:   bucket,
		sugar:    sugar,
	}
}

// ScheduleTasks splits a scraping run into one Schedule per page.
func ScheduleTasks(sugar *zap.SugaredLogger, request ScheduleRequest) ([]Schedule, error) {
	sugar.Infof("Starting Schedule Tasks Handler, pageSize: %d, startOffset: %d, pageCount: %d",
		request.PageSize,
		request.StartOffset,
		request.PageCount)
	if request.PageSize <= 0 || request.PageCount < 0 || request.StartOffset < 0 {
		return nil, fmt.Errorf("invalid schedule request %+v", request)
	}
	result := make([]Schedule, 0, request.PageCount)
	for i := int32(0); i < request.PageCount; i++ {
		result = append(result, Schedule{Limit: request.PageSize, Offset: request.StartOffset + i*request.PageSize})
	}
	return result, nil
}

// Rows resolves the generation of every pokemon and flattens them into
// export rows.
func Rows(ctx context.Context, catalog Catalog, pokemons []pokeapi.PokemonResponse) ([]parquet.Pokemon, error) {
	var rows []parquet.Pokemon
	for _, pokemon := range pokemons {
		generation, err := catalog.GetPokemonGeneration(ctx, pokemon.Species)
		if err != nil {
			return nil, fmt.Errorf("generation of %s: %w", pokemon.Name, err)
		}
		entries, err := parquet.ToPokemon(pokemon, generation)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", pokemon.Name, err)
		}
		rows = append(rows, entries...)
	}
	return rows, nil
}

// WriteCSV streams rows with a header to out.
func WriteCSV(out io.Writer, rows []parquet.Pokemon) error {
	w := csv.NewStreamWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Finish()
}

// Scrape exports one page. An empty page produces no files and a nil result.
func (e *Exporter) Scrape(ctx context.Context, request Schedule) (*ScraperResult, error) {
	e.sugar.Infof("Starting Scrapping Handler, limit: %d offset: %d",
		request.Limit,
		request.Offset)
	pokemons, err := e.catalog.ListPokemons(ctx, request.Limit, request.Offset)
	if err != nil {
		return nil, err
	}
	resultsCount := int32(len(pokemons))
	e.sugar.Infof("Got %d Pokemon results", resultsCount)
	if resultsCount == 0 {
		return nil, nil
	}
	rows, err := Rows(ctx, e.catalog, pokemons)
	if err != nil {
		e.sugar.Errorf("Failed to build Pokemon rows: %s", err)
		return nil, err
	}

	pokemonWriter, err := parquet.NewPokemonWriter(e.sugar)
	if err != nil {
		e.sugar.Errorf("Failed to create Pokemon Parquet Writer: %s", err)
		return nil, err
	}
	csvWriter := csv.NewPokemonWriter()
	if err := csvWriter.WriteHeader(); err != nil {
		return nil, err
	}
	for _, row := range rows {
		e.sugar.Infof("Writing Pokemon %s", row.Name)
		if err := pokemonWriter.WritePokemon(&row); err != nil {
			e.sugar.Errorf("Error writing Pokemon to Parquet: %s", err)
			return nil, err
		}
		if err := csvWriter.Write(row); err != nil {
			e.sugar.Errorf("Error writing Pokemon to CSV: %s", err)
			return nil, err
		}
	}
	if err := pokemonWriter.Finish(); err != nil {
		return nil, err
	}
	if err := csvWriter.Finish(); err != nil {
		return nil, err
	}

	firstId := request.Offset + 1
	parquetFileName := fmt.Sprintf("pokemons/%d_%d.parquet", firstId, firstId+resultsCount-1)
	csvFileName := fmt.Sprintf("pokemons/%d_%d.csv", firstId, firstId+resultsCount-1)
	e.sugar.Infof("Sending parquet file of size %d to S3", pokemonWriter.Size())
	if err := e.uploader.PutFile(ctx, pokemonWriter.BufferReader(), e.bucket, parquetFileName, "application/vnd.apache.parquet"); err != nil {
		return nil, fmt.Errorf("upload %s: %w", parquetFileName, err)
	}
	e.sugar.Infof("Sending CSV file of size %d to S3", csvWriter.Size())
	if err := e.uploader.PutFile(ctx, csvWriter.BufferReader(), e.bucket, csvFileName, "text/csv"); err != nil {
		return nil, fmt.Errorf("upload %s: %w", csvFileName, err)
	}
	return &ScraperResult{
		CsvFileName:     csvFileName,
		ParquetFileName: parquetFileName,
		Rows:            len(rows),
	}, nil
}
