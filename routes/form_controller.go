package routes

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	json "github.com/goccy/go-json"
	"github.com/gofrs/uuid"

	"github.com/formlet/formlet/app"
	"github.com/formlet/formlet/form"
	"github.com/formlet/formlet/httpx"
	"github.com/formlet/formlet/log"
	"github.com/formlet/formlet/model"
)

type createFormRequest struct {
	Password string `json:"password"`
	Data     any    `json:"data"`
}

func CreateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := createFormRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if req.Password == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "create_form.password", "missing form password")
			return
		}

		def, err := form.Validate(req.Data)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusUnprocessableEntity, log.DebugLevel, "create_form.validate", "invalid form data")
			return
		}

		hash, err := httpx.HashSecret(req.Password)
		if err != nil {
			httpx.LogInternalError(w, "create_form.hash_password", err)
			return
		}

		id, err := uuid.NewV4()
		if err != nil {
			httpx.LogInternalError(w, "create_form.id", err)
			return
		}

		doc, err := json.Marshal(def)
		if err != nil {
			httpx.LogInternalError(w, "create_form.serialize", err)
			return
		}

		_, err = app.ExecContext(r.Context(), `
			INSERT INTO form (id, password_hash, data, created_at)
			VALUES (?, ?, ?, ?)`,
			id.String(),
			hash,
			string(doc),
			time.Now(),
		)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_form", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": id.String(),
		})
	}
}

func GetForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}

		record := model.FormRecord{ID: formId}
		var doc string
		err := app.QueryRowContext(r.Context(), `
			SELECT data, created_at FROM form WHERE id = ?`,
			formId,
		).Scan(&doc, &record.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			httpx.LogNotFound(w, "get_form", formId)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_form", err)
			return
		}

		// the stored document is untrusted until it passes validation
		var raw any
		if err := json.Unmarshal([]byte(doc), &raw); err != nil {
			httpx.LogStatusMsg(w, http.StatusUnprocessableEntity, log.WarnLevel, "get_form.parse", "invalid form data")
			return
		}
		record.Data, err = form.Validate(raw)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusUnprocessableEntity, log.WarnLevel, "get_form.validate", "invalid form data")
			return
		}

		render.JSON(w, r, map[string]any{
			"id":        record.ID,
			"createdAt": record.CreatedAt,
			"view":      form.Render(record.Data),
		})
	}
}

type formSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, data, created_at
			FROM form
			ORDER BY created_at DESC`)
		if err != nil {
			httpx.LogInternalError(w, "db.get_forms", err)
			return
		}
		defer rows.Close()

		forms := []formSummary{}
		for rows.Next() {
			f := formSummary{}
			var doc string
			err = rows.Scan(&f.ID, &doc, &f.CreatedAt)
			if err != nil {
				httpx.LogInternalError(w, "db.get_forms.scan", err)
				return
			}

			var header struct {
				Title string `json:"title"`
			}
			if err := json.Unmarshal([]byte(doc), &header); err == nil {
				f.Title = header.Title
			}
			forms = append(forms, f)
		}

		render.JSON(w, r, map[string]any{
			"forms": forms,
		})
	}
}

func DeleteForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}
		if !checkFormPassword(app, w, r, "delete_form", formId) {
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		// responses go first: the form and its responses leave together or not at all
		_, err = tx.ExecContext(r.Context(), `
			DELETE FROM response
			WHERE form_id = ?`,
			formId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form.responses", err)
			return
		}

		_, err = tx.ExecContext(r.Context(), `
			DELETE FROM form WHERE id = ?`,
			formId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form", err)
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form.commit", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func formIdParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
		return "", false
	}
	return id.String(), true
}

// checkFormPassword verifies the form's access secret from the password query
// parameter. It writes the error response and returns false when the form is
// missing or the secret does not match.
func checkFormPassword(app app.App, w http.ResponseWriter, r *http.Request, code, formId string) bool {
	password := r.URL.Query().Get("password")
	if password == "" {
		httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, code+".password", "missing form password")
		return false
	}

	var hash string
	err := app.QueryRowContext(r.Context(), `
		SELECT password_hash FROM form WHERE id = ?`,
		formId,
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		httpx.LogNotFound(w, code, formId)
		return false
	}
	if err != nil {
		httpx.LogInternalError(w, "db."+code+".password", err)
		return false
	}

	if !httpx.VerifySecret(hash, password) {
		httpx.LogForbidden(w, code+".password", formId)
		return false
	}
	return true
}
