// seed_animals genera un script SQL para poblar la tabla animals a partir de un CSV
// con columnas species,name,age (la fila de cabecera es opcional).
//
// Uso: go run ./cmd/seed_animals [-charset utf-8|iso-8859-1|windows-1252] [-out archivo.sql] [animals.csv]
// Por defecto lee schema/seed_animals.csv y escribe en stdout.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jhoicas/cretaceous-api/internal/domain/entity"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	charset := flag.String("charset", "utf-8", "codificación del CSV: utf-8, iso-8859-1, windows-1252")
	outPath := flag.String("out", "", "archivo de salida (vacío = stdout)")
	flag.Parse()

	csvPath := "schema/seed_animals.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	animals, err := readAnimals(f, *charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		file, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	if err := writeSeedSQL(out, animals); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generados %d animales desde %s\n", len(animals), csvPath)
}

// decoder envuelve r según la codificación declarada.
func decoder(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}
}

func readAnimals(r io.Reader, charset string) ([]entity.Animal, error) {
	dr, err := decoder(r, charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(dr)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var animals []entity.Animal
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "species") {
			continue
		}
		age, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: edad inválida %q", line, rec[2])
		}
		animals = append(animals, entity.Animal{
			Species: strings.TrimSpace(rec[0]),
			Name:    strings.TrimSpace(rec[1]),
			Age:     age,
		})
	}
	return animals, nil
}

// writeSeedSQL escribe un INSERT por animal; re-ejecutar el script no duplica filas.
func writeSeedSQL(w io.Writer, animals []entity.Animal) error {
	if _, err := io.WriteString(w, "-- Animales de ejemplo\n-- Generado por cmd/seed_animals\n\n"); err != nil {
		return err
	}
	for _, a := range animals {
		species, name := escapeSQL(a.Species), escapeSQL(a.Name)
		_, err := fmt.Fprintf(w,
			"INSERT INTO animals (species, name, age)\nSELECT '%s', '%s', %d\nWHERE NOT EXISTS (SELECT 1 FROM animals WHERE species = '%s' AND name = '%s');\n",
			species, name, a.Age, species, name)
		if err != nil {
			return err
		}
	}
	return nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
