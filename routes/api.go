// Package routes registers the demo HTTP API.
package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/km-arc/slarb/framework/app"
	gohttp "github.com/km-arc/slarb/framework/http"
	"github.com/km-arc/slarb/framework/routing"
	"github.com/km-arc/slarb/framework/slarb"
)

// SlarbController exposes the response builder over HTTP.
type SlarbController struct {
	app.Controller
	Slarb *slarb.Factory
	Name  string
}

// Register mounts the routes on the application's router.
//
//	GET  /                        → welcome envelope
//	GET  /api/v1/status/{code}    → check code against ?status=success|error
//	POST /api/v1/slarb            → build an envelope from a JSON or form body
func Register(a *app.Application) {
	c := &SlarbController{
		Controller: app.Controller{Log: a.Log()},
		Slarb:      a.Slarb(),
		Name:       a.Config().App.Name,
	}

	r := a.Router()
	r.Get("/", c.Home)
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/status/{code}", c.Status)
		api.Post("/slarb", c.Build)
	})
}

// Home answers with the application name and version.
func (c *SlarbController) Home(w http.ResponseWriter, r *http.Request) {
	c.Response(w).Send(c.Slarb.Success().
		WithMessage("Welcome to " + c.Name).
		WithData(map[string]any{"name": c.Name, "version": app.Version}))
}

// Status reports whether {code} may be used with ?status= (default success).
func (c *SlarbController) Status(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	code, err := strconv.Atoi(req.RouteParam("code"))
	if err != nil {
		res.Unprocessable("The code must be an integer.", map[string]any{"code": req.RouteParam("code")})
		return
	}

	statusName := req.Query("status", slarb.StatusSuccess)
	status, err := slarb.ParseStatus(statusName)
	if err != nil {
		res.Unprocessable("The status must be success or error.", map[string]any{"status": statusName})
		return
	}

	if _, err := c.Slarb.Respond(status).WithHTTPCode(code); err != nil {
		res.Unprocessable(err.Error(), violationData(code, statusName, err))
		return
	}

	res.Success(map[string]any{
		"code":   code,
		"reason": slarb.StatusText(code),
		"status": statusName,
	})
}

type buildInput struct {
	Status   string `json:"status"`
	HTTPCode int    `json:"http_code"`
	Message  string `json:"message"`
	Data     any    `json:"data"`
}

// Build runs the body through slarb.Slarb and sends the result. Codes that
// validate but cannot be sent as a final status (1xx) are rejected with 422.
func (c *SlarbController) Build(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	in, err := readBuildInput(req)
	if err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	built, err := c.Slarb.Make(in.Status, in.HTTPCode, in.Message, in.Data)
	if err != nil {
		c.Log.Debug("slarb build rejected", zap.Int("code", in.HTTPCode), zap.String("status", in.Status), zap.Error(err))
		res.Unprocessable(err.Error(), violationData(in.HTTPCode, in.Status, err))
		return
	}
	if !slarb.IsFinal(built.HTTPCode) {
		res.Unprocessable(
			fmt.Sprintf("The HTTP status code %d cannot be sent as a final response.", built.HTTPCode),
			map[string]any{"code": built.HTTPCode, "status": in.Status, "violation": "interim code"},
		)
		return
	}

	res.Slarb(built)
}

// readBuildInput reads a JSON body, or form fields with data as a JSON string.
func readBuildInput(req *gohttp.Request) (buildInput, error) {
	var in buildInput
	if req.IsJSON() {
		err := req.Bind(&in)
		return in, err
	}

	code, err := req.InputInt("http_code")
	if err != nil {
		return in, err
	}
	in = buildInput{
		Status:   req.Input("status"),
		HTTPCode: code,
		Message:  req.Input("message"),
	}
	if raw := req.Input("data"); raw != "" {
		if err := sonic.UnmarshalString(raw, &in.Data); err != nil {
			return in, errors.New("data must be valid JSON")
		}
	}
	return in, nil
}

func violationData(code int, status string, err error) map[string]any {
	data := map[string]any{"code": code, "status": status}
	var invalid *slarb.InvalidHTTPCodeError
	if errors.As(err, &invalid) {
		data["violation"] = invalid.Kind.String()
	}
	return data
}
