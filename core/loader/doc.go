// Package loader registers the HTTP features of the serve command.
//
// The compare, history and integrity features each implement Feature. The
// Manager loads them in registration order and skips any feature whose
// backing service is not configured, for example history without a database.
//
//	mgr := loader.NewManager()
//	mgr.Register(compare.NewFeature(svc))
//	loaded, err := mgr.LoadAll(app)
package loader
