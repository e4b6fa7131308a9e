// Package gatekit validates incoming HTTP request data against declarative
// schemas before application handlers run, and reports malformed requests
// uniformly.
//
// A route declares one schema per request segment (body, query, path
// params, headers, cookies, signed cookies). The validation middleware
// evaluates every registered segment in a fixed order, merges all failures
// of one request into a single tagged error, and hands it to a Responder
// that renders the structured 400 reply:
//
//	{
//	  "statusCode": 400,
//	  "error": "Bad Request",
//	  "message": "Validation failed",
//	  "validation": {
//	    "body": {"source": "body", "keys": ["age"], "message": "\"age\" must be greater than or equal to 18"}
//	  }
//	}
//
// Errors the engine did not produce pass through the responder untouched.
//
// # Usage
//
//	signup := gatekit.Validate(gatekit.SchemaMap{
//		gatekit.Body: schema.MustNew(
//			schema.String("email").Required(),
//			schema.String("password").Pattern(`^[a-zA-Z0-9]{3,30}$`).Required(),
//			schema.String("repeat_password").Ref("password").Required(),
//			schema.Number("age").Min(18),
//		),
//	})
//
//	r := chi.NewRouter()
//	r.With(signup).Post("/signup", signupHandler)
//
// On the success path handlers read the validated views, including applied
// defaults and coercions, via SegmentData or SegmentValue.
//
// Schemas and registries are write-once at route setup and read-only per
// request; request-time validation is pure computation over
// already-decoded data and needs no synchronization.
package gatekit
