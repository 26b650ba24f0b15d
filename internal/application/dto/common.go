package dto

// PageRequest paginación para listados. Los handlers la rellenan desde la
// query string y normalizan con Normalize antes de llamar al caso de uso.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// maxPageLimit tope duro para evitar listados sin acotar.
const maxPageLimit = 200

// Normalize aplica el límite por defecto y acota los valores al rango válido.
func (p *PageRequest) Normalize(defaultLimit int) {
	if p.Limit <= 0 || p.Limit > maxPageLimit {
		p.Limit = defaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP con código estable para clientes.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
