// Package registry maps request names to the handlers the front controller
// dispatches to.
//
// Entries are registered at startup from two directories:
//   - page templates: every *.html file of the pages directory is registered
//     under its CamelCase name plus the script suffix ("ListEvents.html"
//     becomes "ListEvents.php"); files starting with "_" are shared partials
//     parsed into every page;
//   - static assets: every regular file of the static directory is
//     registered under its slash-separated path relative to that directory
//     ("skin/css/app.css").
//
// A Registry is filled before the server starts and only read afterwards.
package registry
