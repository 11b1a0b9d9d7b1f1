// Package http provides request and response helpers for handlers.
//
// # Response
//
// Every JSON response goes out as a slarb envelope:
//
//	res := gohttp.NewResponse(w).WithLogger(log)
//
//	res.Slarb(slarb.Success().WithData(user).Build()) // code from the builder
//	res.Success(data)            // 200 {"status": true, "message": "Request Successful", "data": ...}
//	res.Created(data)            // 201
//	res.NoContent()              // 204
//
//	res.Error(404, "Not here")   // {"status": false, "message": "Not here", "data": null}
//	res.Unauthorized()           // 401 "Unauthenticated."
//	res.Forbidden()              // 403 "This action is unauthorized."
//	res.NotFound()               // 404 "Not found."
//	res.Unprocessable(msg, errs) // 422 with data
//	res.ServerError()            // 500 "Server Error."
//
// Bodies are encoded with sonic. A 1xx code cannot close an exchange, so
// Slarb answers it with 500.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//	var body struct{ Status string `json:"status"` }
//	err := req.Bind(&body)          // JSON only; ErrNotJSON otherwise
//	n, err := req.InputInt("http_code") // form or query
//	page := req.Query("page", "1")
//	code := req.RouteParam("code")
package http
