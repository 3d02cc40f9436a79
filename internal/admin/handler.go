package admin

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/liborpaciorek/tjhlavnice/internal/infrastructure/media"
	"github.com/liborpaciorek/tjhlavnice/internal/platform/logging"
	"github.com/liborpaciorek/tjhlavnice/internal/usecase"
)

// Handler serves the administration API: generic record CRUD derived from
// the resource registry, image uploads and the bulk gallery intake.
type Handler struct {
	registry       *Registry
	store          Store
	media          *media.Store
	gallery        *usecase.GalleryService
	logger         *logging.Logger
	validate       *validator.Validate
	maxUploadBytes int64
	now            func() time.Time
}

func NewHandler(
	registry *Registry,
	store Store,
	mediaStore *media.Store,
	gallery *usecase.GalleryService,
	logger *logging.Logger,
	maxUploadBytes int64,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		registry:       registry,
		store:          store,
		media:          mediaStore,
		gallery:        gallery,
		logger:         logger,
		validate:       validator.New(),
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/resources/{$}", h.listResources)
	mux.HandleFunc("POST /admin/uploads/{kind}/{$}", h.upload)
	mux.HandleFunc("POST /admin/gallery-uploads/{$}", h.bulkUpload)
	mux.HandleFunc("GET /admin/{resource}/{$}", h.list)
	mux.HandleFunc("POST /admin/{resource}/{$}", h.create)
	mux.HandleFunc("PUT /admin/{resource}/{$}", h.updateSingleton)
	mux.HandleFunc("GET /admin/{resource}/{id}/{$}", h.get)
	mux.HandleFunc("PUT /admin/{resource}/{id}/{$}", h.update)
	mux.HandleFunc("DELETE /admin/{resource}/{id}/{$}", h.delete)
}

type resourceDescriptor struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Singleton   bool     `json:"singleton"`
	ReadOnly    bool     `json:"readOnly"`
	ListColumns []string `json:"listColumns"`
	Searchable  bool     `json:"searchable"`
}

func (h *Handler) listResources(w http.ResponseWriter, _ *http.Request) {
	resources := h.registry.All()
	out := make([]resourceDescriptor, 0, len(resources))
	for _, res := range resources {
		out = append(out, resourceDescriptor{
			Name:        res.Name,
			Label:       res.Label,
			Singleton:   res.Singleton,
			ReadOnly:    res.ReadOnly,
			ListColumns: res.ListColumns,
			Searchable:  len(res.SearchColumns) > 0,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}

	if res.Singleton {
		row, exists, err := h.store.GetSingleton(r.Context(), res)
		if err != nil {
			h.storeError(w, r, err)
			return
		}
		if !exists {
			row = Row{}
		}
		writeJSON(w, http.StatusOK, row)
		return
	}

	q := ListQuery{
		Search:  r.URL.Query().Get("q"),
		Filters: map[string]any{},
		Page:    1,
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			writeError(w, http.StatusBadRequest, "neplatné číslo stránky")
			return
		}
		q.Page = page
	}
	for _, column := range res.FilterColumns {
		raw := r.URL.Query().Get(column)
		if raw == "" {
			continue
		}
		value, err := coerceFilter(res, column, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("neplatný filtr %s", column))
			return
		}
		q.Filters[column] = value
	}

	rows, total, err := h.store.List(r.Context(), res, q)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Items:      rows,
		Page:       q.Page,
		PageSize:   ListPageSize,
		TotalCount: total,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	id, ok := h.recordID(w, r, res)
	if !ok {
		return
	}

	row, exists, err := h.store.Get(r.Context(), res, id)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "záznam nebyl nalezen")
		return
	}

	writeJSON(w, http.StatusOK, row)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	res, ok := h.writableResource(w, r)
	if !ok {
		return
	}

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	values, fieldErrs := buildValues(h.validate, res, payload, true)
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	now := h.now().UTC()
	if res.CreatedAtColumn != "" {
		values[res.CreatedAtColumn] = now
	}
	if res.UpdatedAtColumn != "" {
		values[res.UpdatedAtColumn] = now
	}

	if res.Singleton {
		if _, exists, err := h.store.GetSingleton(r.Context(), res); err != nil {
			h.storeError(w, r, err)
			return
		} else if exists {
			writeError(w, http.StatusConflict, "záznam již existuje, použijte úpravu")
			return
		}
		if err := h.store.UpsertSingleton(r.Context(), res, values); err != nil {
			h.storeError(w, r, err)
			return
		}
		row, _, err := h.store.GetSingleton(r.Context(), res)
		if err != nil {
			h.storeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, row)
		return
	}

	if ok := h.clearExclusiveFlag(w, r, res, values, 0); !ok {
		return
	}

	id, err := h.store.Create(r.Context(), res, values)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	row, _, err := h.store.Get(r.Context(), res, id)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

// updateSingleton edits the one row of a singleton resource, which is
// addressed without an id.
func (h *Handler) updateSingleton(w http.ResponseWriter, r *http.Request) {
	res, ok := h.writableResource(w, r)
	if !ok {
		return
	}
	if !res.Singleton {
		writeError(w, http.StatusMethodNotAllowed, "úprava vyžaduje identifikátor záznamu")
		return
	}

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	values, fieldErrs := buildValues(h.validate, res, payload, false)
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	if len(values) == 0 {
		writeError(w, http.StatusBadRequest, "žádná pole ke změně")
		return
	}

	if res.UpdatedAtColumn != "" {
		values[res.UpdatedAtColumn] = h.now().UTC()
	}

	if _, exists, err := h.store.GetSingleton(r.Context(), res); err != nil {
		h.storeError(w, r, err)
		return
	} else if !exists {
		writeError(w, http.StatusNotFound, "záznam nebyl nalezen")
		return
	}

	if err := h.store.UpsertSingleton(r.Context(), res, values); err != nil {
		h.storeError(w, r, err)
		return
	}
	row, _, err := h.store.GetSingleton(r.Context(), res)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	res, ok := h.writableResource(w, r)
	if !ok {
		return
	}
	id, ok := h.recordID(w, r, res)
	if !ok {
		return
	}

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	values, fieldErrs := buildValues(h.validate, res, payload, false)
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	if len(values) == 0 {
		writeError(w, http.StatusBadRequest, "žádná pole ke změně")
		return
	}

	if res.UpdatedAtColumn != "" {
		values[res.UpdatedAtColumn] = h.now().UTC()
	}

	if flag, ok := values[res.ExclusiveBoolColumn].(bool); ok && flag {
		// The flag is cleared elsewhere before this row takes it, so
		// confirm the row exists and keep a failed update side-effect free.
		if _, exists, err := h.store.Get(r.Context(), res, id); err != nil {
			h.storeError(w, r, err)
			return
		} else if !exists {
			writeError(w, http.StatusNotFound, "záznam nebyl nalezen")
			return
		}
		if ok := h.clearExclusiveFlag(w, r, res, values, id); !ok {
			return
		}
	}

	updated, err := h.store.Update(r.Context(), res, id, values)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "záznam nebyl nalezen")
		return
	}

	row, _, err := h.store.Get(r.Context(), res, id)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	res, ok := h.writableResource(w, r)
	if !ok {
		return
	}
	id, ok := h.recordID(w, r, res)
	if !ok {
		return
	}

	deleted, err := h.store.Delete(r.Context(), res, id)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "záznam nebyl nalezen")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// clearExclusiveFlag unsets the resource's exclusive flag on every other
// row when the write is about to set it, so only one claimant remains.
func (h *Handler) clearExclusiveFlag(w http.ResponseWriter, r *http.Request, res Resource, values Row, exceptID int64) bool {
	if res.ExclusiveBoolColumn == "" {
		return true
	}
	if flag, ok := values[res.ExclusiveBoolColumn].(bool); !ok || !flag {
		return true
	}
	if err := h.store.ClearBool(r.Context(), res, res.ExclusiveBoolColumn, exceptID); err != nil {
		h.storeError(w, r, err)
		return false
	}
	return true
}

func (h *Handler) resource(w http.ResponseWriter, r *http.Request) (Resource, bool) {
	res, ok := h.registry.Lookup(r.PathValue("resource"))
	if !ok {
		writeError(w, http.StatusNotFound, "neznámý typ záznamu")
		return Resource{}, false
	}
	return res, true
}

func (h *Handler) writableResource(w http.ResponseWriter, r *http.Request) (Resource, bool) {
	res, ok := h.resource(w, r)
	if !ok {
		return Resource{}, false
	}
	if res.ReadOnly {
		writeError(w, http.StatusForbidden, "záznam je pouze pro čtení")
		return Resource{}, false
	}
	return res, true
}

func (h *Handler) recordID(w http.ResponseWriter, r *http.Request, res Resource) (int64, bool) {
	if res.Singleton {
		writeError(w, http.StatusNotFound, "záznam nemá identifikátor")
		return 0, false
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "neplatný identifikátor záznamu")
		return 0, false
	}
	return id, true
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	payload := map[string]any{}
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "neplatné tělo požadavku")
		return nil, false
	}
	return payload, true
}

func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "admin store operation failed", "error", err)
	writeError(w, http.StatusInternalServerError, "operace se nezdařila")
}

// buildValues coerces and validates the payload against the resource's
// fields. On create, absent optional fields get zero values; on update
// only submitted fields are touched.
func buildValues(validate *validator.Validate, res Resource, payload map[string]any, create bool) (Row, map[string]string) {
	values := Row{}
	fieldErrs := map[string]string{}

	for _, f := range res.Fields {
		raw, present := payload[f.Column]
		if !present {
			if !create {
				continue
			}
			if f.Required {
				fieldErrs[f.Column] = "hodnota je povinná"
				continue
			}
			values[f.Column] = zeroValue(f)
			continue
		}

		value, err := coerce(f, raw)
		if err != nil {
			fieldErrs[f.Column] = err.Error()
			continue
		}
		if f.Required && isEmpty(value) {
			fieldErrs[f.Column] = "hodnota je povinná"
			continue
		}
		if f.Validate != "" && value != nil {
			if err := validate.Var(value, f.Validate); err != nil {
				fieldErrs[f.Column] = "neplatná hodnota"
				continue
			}
		}
		values[f.Column] = value
	}

	return values, fieldErrs
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case int64:
		return v == 0
	}
	return false
}

func coerceFilter(res Resource, column, raw string) (any, error) {
	f, ok := res.field(column)
	if !ok {
		return raw, nil
	}
	switch f.Kind {
	case FieldInt, FieldRef:
		return strconv.ParseInt(raw, 10, 64)
	case FieldBool:
		return strconv.ParseBool(raw)
	}
	return raw, nil
}
