package dto

// DefaultAnimalPageSize tamaño de página cuando no se envía pageSize.
const DefaultAnimalPageSize = 4

// AnimalRequest cuerpo para crear o reemplazar un animal. En creación AnimalID se ignora.
type AnimalRequest struct {
	AnimalID int64  `json:"animalId"`
	Species  string `json:"species"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
}

// AnimalResponse salida de un animal.
type AnimalResponse struct {
	AnimalID int64  `json:"animalId"`
	Species  string `json:"species"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
}

// AnimalListQuery filtros opcionales de GET /api/animals. Cadena vacía = sin filtro.
type AnimalListQuery struct {
	Species    string `query:"species"`
	Name       string `query:"name"`
	MinimumAge int    `query:"minimumAge"`
}

// AnimalPageResponse página de animales. Pages contiene el total de filas de la tabla,
// no el número de páginas.
type AnimalPageResponse struct {
	Animals     []AnimalResponse `json:"animals"`
	Pages       int64            `json:"pages"`
	CurrentPage int              `json:"currentPage"`
	PageSize    int              `json:"pageSize"`
}
