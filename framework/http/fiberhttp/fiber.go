// Package fiberhttp delivers slarb responses over fiber.
package fiberhttp

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"github.com/km-arc/slarb/framework/slarb"
)

// Config returns a fiber config that encodes JSON with sonic.
func Config() fiber.Config {
	return fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: ErrorHandler,
	}
}

// Send writes r with its HTTP code. A 1xx code cannot carry the body and
// is answered with a 500 envelope.
func Send(c *fiber.Ctx, r slarb.Response) error {
	if !slarb.IsFinal(r.HTTPCode) {
		r = serverError()
	}
	return c.Status(r.HTTPCode).JSON(r)
}

// HandlerFunc returns a response built by the handler.
type HandlerFunc func(c *fiber.Ctx) (slarb.Response, error)

// Handler adapts fn into a fiber handler. An error from fn goes to the
// app's ErrorHandler.
//
//	app.Get("/ping", fiberhttp.Handler(func(c *fiber.Ctx) (slarb.Response, error) {
//	    return slarb.Success().WithMessage("pong").Build(), nil
//	}))
func Handler(fn HandlerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := fn(c)
		if err != nil {
			return err
		}
		return Send(c, r)
	}
}

// ErrorHandler answers every error with an error envelope. *fiber.Error
// keeps its code when it is a valid error code; everything else is 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server Error."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	b, verr := slarb.Error().WithHTTPCode(code)
	if verr != nil {
		return Send(c, serverError())
	}
	return Send(c, b.WithMessage(message).Build())
}

func serverError() slarb.Response {
	return slarb.Must(slarb.Error().WithHTTPCode(fiber.StatusInternalServerError)).
		WithMessage("Server Error.").
		Build()
}
