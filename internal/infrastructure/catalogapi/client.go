package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tu-usuario/cafe-sang/internal/application/catalog"
	"github.com/tu-usuario/cafe-sang/internal/domain"
	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
	"github.com/tu-usuario/cafe-sang/pkg/config"
)

// Verificar en tiempo de compilación que Client implementa el puerto del catálogo.
var _ catalog.Client = (*Client)(nil)

// Client adaptador HTTP hacia la API REST remota de catálogo.
// Usa net/http de la librería estándar; toda falla se normaliza a *domain.APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. El timeout por petición viene de configuración
// (10 s por defecto).
func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Categories obtiene la lista ordenada de categorías (GET /categories).
func (c *Client) Categories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := c.get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Products obtiene productos (GET /products), opcionalmente filtrados por
// categoría en el servidor. El filtrado por status lo hace el caso de uso:
// la API puede devolver ítems inactivos.
func (c *Client) Products(ctx context.Context, categoryID *int) ([]entity.Product, error) {
	var query url.Values
	if categoryID != nil {
		query = url.Values{"categoryId": []string{strconv.Itoa(*categoryID)}}
	}
	var out []entity.Product
	if err := c.get(ctx, "/products", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveImageURL construye la URL absoluta de una imagen. URLs ya absolutas
// pasan sin cambio; ruta vacía devuelve vacío; nunca falla.
func (c *Client) ResolveImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + path
}

// upstreamError cuerpo de error que puede enviar la API ({message: string}).
type upstreamError struct {
	Message string `json:"message"`
}

// get ejecuta la petición y decodifica la respuesta JSON en out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &domain.APIError{Status: 500, Message: "no se pudo construir la petición", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Falla de transporte: no hubo respuesta HTTP, status 0
		return &domain.APIError{Status: 0, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{Status: 0, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ""
		var ue upstreamError
		if json.Unmarshal(body, &ue) == nil {
			msg = ue.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("catálogo respondió %s", resp.Status)
		}
		return &domain.APIError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.APIError{Status: 500, Message: "respuesta del catálogo ilegible", Err: err}
	}
	return nil
}
