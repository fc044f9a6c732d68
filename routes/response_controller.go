package routes

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	json "github.com/goccy/go-json"
	"github.com/gofrs/uuid"

	"github.com/formlet/formlet/app"
	"github.com/formlet/formlet/form"
	"github.com/formlet/formlet/httpx"
	"github.com/formlet/formlet/log"
	"github.com/formlet/formlet/model"
)

const responsePageSize = 20

func SubmitResponse(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}

		// entries arrive in submission order; the aggregator depends on it
		entries := []form.Entry{}
		err := render.DecodeJSON(r.Body, &entries)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		var exists bool
		err = app.QueryRowContext(r.Context(), `
			SELECT 1 FROM form WHERE id = ?`,
			formId,
		).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			httpx.LogNotFound(w, "submit_response.form", formId)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.submit_response.form", err)
			return
		}

		doc, err := json.Marshal(form.Aggregate(entries))
		if err != nil {
			httpx.LogInternalError(w, "submit_response.serialize", err)
			return
		}

		id, err := uuid.NewV4()
		if err != nil {
			httpx.LogInternalError(w, "submit_response.id", err)
			return
		}

		_, err = app.ExecContext(r.Context(), `
			INSERT INTO response (id, form_id, data, created_at)
			VALUES (?, ?, ?, ?)`,
			id.String(),
			formId,
			string(doc),
			time.Now(),
		)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_response", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": id.String(),
		})
	}
}

func ListResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, ok := formIdParam(w, r)
		if !ok {
			return
		}
		if !checkFormPassword(app, w, r, "get_responses", formId) {
			return
		}

		page := 1
		if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
			page = p
		}

		var total int
		err := app.QueryRowContext(r.Context(), `
			SELECT COUNT(*) FROM response WHERE form_id = ?`,
			formId,
		).Scan(&total)
		if err != nil {
			httpx.LogInternalError(w, "db.get_responses.count", err)
			return
		}

		totalPages := (total + responsePageSize - 1) / responsePageSize
		if totalPages < 1 {
			totalPages = 1
		}

		rows, err := app.QueryContext(r.Context(), `
			SELECT id, data, created_at
			FROM response
			WHERE form_id = ?
			ORDER BY created_at DESC
			LIMIT ? OFFSET ?`,
			formId,
			responsePageSize,
			(page-1)*responsePageSize,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.get_responses", err)
			return
		}
		defer rows.Close()

		responses := []model.ResponseRecord{}
		for rows.Next() {
			resp := model.ResponseRecord{FormID: formId}
			var doc string
			err = rows.Scan(&resp.ID, &doc, &resp.CreatedAt)
			if err != nil {
				httpx.LogInternalError(w, "db.get_responses.scan", err)
				return
			}

			err = json.Unmarshal([]byte(doc), &resp.Data)
			if err != nil {
				httpx.LogInternalError(w, "db.get_responses.parse_data", err)
				return
			}

			responses = append(responses, resp)
		}

		render.JSON(w, r, map[string]any{
			"responses":      responses,
			"currentPage":    page,
			"totalPages":     totalPages,
			"totalResponses": total,
		})
	}
}
