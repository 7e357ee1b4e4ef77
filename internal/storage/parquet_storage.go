package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
	"github.com/zakazai/normtab/internal/types"
)

// ParquetRow is the on-disk shape of a snapshot row. The cells are kept as
// a JSON array so every table shares one schema.
type ParquetRow struct {
	TableName string `parquet:"name=table_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	DataJSON  string `parquet:"name=data_json, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// ParquetPath returns where a table's snapshot lives inside dir.
func ParquetPath(dir, tableName string) string {
	return filepath.Join(dir, fmt.Sprintf("%s.parquet", tableName))
}

// WriteParquet exports t to dir/<name>.parquet and returns the file path.
// Empty tables are skipped and yield an empty path.
func WriteParquet(dir string, t Tabular) (string, error) {
	rows := t.Rows()
	if len(rows) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	filePath := ParquetPath(dir, t.TableName())
	fw, err := local.NewLocalFileWriter(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create Parquet file: %w", err)
	}

	// a half written snapshot is removed rather than left behind
	fail := func(err error) (string, error) {
		fw.Close()
		os.Remove(filePath)
		return "", err
	}

	pw, err := writer.NewParquetWriter(fw, new(ParquetRow), 4)
	if err != nil {
		return fail(fmt.Errorf("failed to create Parquet writer: %w", err))
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i, row := range rows {
		jsonData, err := json.Marshal(row)
		if err != nil {
			return fail(fmt.Errorf("failed to encode row %d: %w", i, err))
		}
		if err := pw.Write(&ParquetRow{TableName: t.TableName(), DataJSON: string(jsonData)}); err != nil {
			return fail(fmt.Errorf("failed to write row %d: %w", i, err))
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fail(fmt.Errorf("failed to finish Parquet file: %w", err))
	}
	if err := fw.Close(); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to close Parquet file: %w", err)
	}

	types.GlobalLogger.Debug("exported %d rows of %s to %s", len(rows), t.TableName(), filePath)
	return filePath, nil
}

// ReadParquet reads the rows of tableName back from a snapshot file.
// Whole JSON numbers come back as int, others as float64.
func ReadParquet(filePath, tableName string) ([]types.Row, error) {
	fr, err := local.NewLocalFileReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Parquet file: %w", err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(ParquetRow), 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create Parquet reader: %w", err)
	}
	defer pr.ReadStop()

	numRows := int(pr.GetNumRows())
	parquetRows := make([]ParquetRow, numRows)
	if err := pr.Read(&parquetRows); err != nil {
		return nil, fmt.Errorf("failed to read Parquet rows: %w", err)
	}

	rows := make([]types.Row, 0, numRows)
	for _, prow := range parquetRows {
		if prow.TableName != tableName {
			continue
		}

		var cells []interface{}
		decoder := json.NewDecoder(strings.NewReader(prow.DataJSON))
		decoder.UseNumber()
		if err := decoder.Decode(&cells); err != nil {
			return nil, fmt.Errorf("failed to unmarshal row data: %w", err)
		}

		row := make(types.Row, len(cells))
		for i, v := range cells {
			row[i] = fromJSON(v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func fromJSON(v interface{}) types.Value {
	num, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := num.Int64(); err == nil {
		return int(i)
	}
	if f, err := num.Float64(); err == nil {
		return f
	}
	return num.String()
}
