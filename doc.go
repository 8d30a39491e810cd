// Package fobini provides a Go client for the FobiniYen phobia-therapy API.
//
// The client wraps the REST API behind typed domain services (auth, phobia
// catalog, therapy content, chat, user profile), attaches bearer-token
// authentication to every call that needs it, and maps transport and HTTP
// failures into a closed error taxonomy. Session state (access token plus
// the last known user profile) is persisted through a credential store so a
// login survives process restarts.
//
// Quick start:
//
//	store, err := keystore.Open(filepath.Join(home, ".fobini", "credentials.json"))
//	if err != nil { ... }
//	sessions := fobini.NewSessionManager(store, nil)
//	client := fobini.NewClient(
//	    fobini.WithSession(sessions),
//	)
//	auth := fobini.NewAuthService(client, sessions)
//
//	user, err := auth.Login(ctx, "ada@example.com", "secret")
//	if err != nil {
//	    var verr *fobini.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Println(verr.Message)
//	    }
//	}
//
// Every API failure is exactly one value from the taxonomy in errors.go and
// can be tested with errors.Is. Nothing is retried by the client; retry
// policy belongs to the caller.
package fobini
