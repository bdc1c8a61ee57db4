package logging

import (
	"context"

	"github.com/servetdekorasyon/website/pkg/interfaces"
)

const (
	rootModule     = "site"
	gatewayModule  = "site.gateway"
	contentModule  = "site.content"
	formsModule    = "site.forms"
	listviewModule = "site.listview"
	carouselModule = "site.carousel"
	adminModule    = "site.admin"
	authModule     = "site.auth"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// GatewayLogger returns the logger namespace reserved for the remote gateway.
func GatewayLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, gatewayModule)
}

// ContentLogger returns the logger namespace reserved for collection services.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// FormsLogger returns the logger namespace reserved for submission controllers.
func FormsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, formsModule)
}

// ListViewLogger returns the logger namespace reserved for list controllers.
func ListViewLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, listviewModule)
}

// CarouselLogger returns the logger namespace reserved for carousel controllers.
func CarouselLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, carouselModule)
}

// AdminLogger returns the logger namespace reserved for admin services.
func AdminLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, adminModule)
}

// AuthLogger returns the logger namespace reserved for the session boundary.
func AuthLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, authModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
