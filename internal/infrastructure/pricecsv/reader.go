// Package pricecsv lee planillas de precios exportadas desde Excel.
// Columnas esperadas (con encabezado): nombre_lista, tipo_ingreso, rango_etario, plan_id, precio.
// El separador puede ser ';' o ','.
package pricecsv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/sigec-api/internal/application/dto"
)

var columns = []string{"nombre_lista", "tipo_ingreso", "rango_etario", "plan_id", "precio"}

// Decoder devuelve el decodificador para el nombre de encoding indicado (utf-8, windows-1252, iso-8859-1).
func Decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	}
	return nil, fmt.Errorf("encoding no soportado: %q", name)
}

// Read decodifica y parsea la planilla. Los errores indican la línea del archivo.
func Read(r io.Reader, enc string) ([]dto.PriceEntryRequest, error) {
	dec, err := Decoder(enc)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(transform.NewReader(r, dec))
	head, _ := br.Peek(4096)

	cr := csv.NewReader(br)
	cr.Comma = detectComma(head)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []dto.PriceEntryRequest
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if blank(rec) {
			continue
		}
		planID, err := strconv.ParseInt(strings.TrimSpace(rec[idx["plan_id"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("línea %d: plan_id inválido %q", line, rec[idx["plan_id"]])
		}
		price, err := ParseAmount(rec[idx["precio"]])
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		out = append(out, dto.PriceEntryRequest{
			ListName:   strings.TrimSpace(rec[idx["nombre_lista"]]),
			IncomeType: strings.TrimSpace(rec[idx["tipo_ingreso"]]),
			BandKey:    strings.TrimSpace(rec[idx["rango_etario"]]),
			PlanID:     planID,
			Price:      price,
		})
	}
	return out, nil
}

// ParseAmount acepta montos en formato local ("12.345,67") o con punto decimal ("12345.67").
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	switch {
	case strings.Contains(s, ",") && strings.Contains(s, "."):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Contains(s, ","):
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("precio inválido %q", s)
	}
	return d, nil
}

func detectComma(head []byte) rune {
	first, _, _ := bytes.Cut(head, []byte("\n"))
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(columns))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q en el encabezado", c)
		}
	}
	return idx, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
