package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/BielosX/wombat/poke-browser/src/parquet"
	"github.com/BielosX/wombat/poke-browser/src/utils"
	"github.com/xitongsys/parquet-go-source/buffer"
)

// PokemonWriter writes parquet.Pokemon rows as CSV, using the parquet column
// names as header. It buffers in memory unless created with NewStreamWriter.
type PokemonWriter struct {
	buffer *buffer.BufferFile
	writer *csv.Writer
	fields []reflect.StructField
}

const InitialCapacity = 256 * 1024

func NewPokemonWriter() *PokemonWriter {
	bufferFile := buffer.NewBufferFileCapacity(InitialCapacity)
	w := NewStreamWriter(bufferFile)
	w.buffer = bufferFile
	return w
}

func NewStreamWriter(out io.Writer) *PokemonWriter {
	return &PokemonWriter{
		writer: csv.NewWriter(out),
		fields: utils.GetFields(parquet.Pokemon{}),
	}
}

func (w *PokemonWriter) WriteHeader() error {
	names, err := utils.ParquetColumnNames(parquet.Pokemon{})
	if err != nil {
		return err
	}
	return w.writer.Write(names)
}

func (w *PokemonWriter) Write(pokemon parquet.Pokemon) error {
	value := reflect.ValueOf(pokemon)
	converted := make([]string, 0, len(w.fields))
	for _, field := range w.fields {
		converted = append(converted, fmt.Sprint(value.FieldByIndex(field.Index).Interface()))
	}
	return w.writer.Write(converted)
}

// Finish flushes pending rows and, for buffered writers, rewinds the buffer.
func (w *PokemonWriter) Finish() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	if w.buffer == nil {
		return nil
	}
	_, err := w.buffer.Seek(0, io.SeekStart)
	return err
}

func (w *PokemonWriter) Size() int {
	if w.buffer == nil {
		return 0
	}
	return len(w.buffer.Bytes())
}

func (w *PokemonWriter) BufferReader() io.Reader {
	return w.buffer
}
