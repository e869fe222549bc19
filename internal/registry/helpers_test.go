package registry

import (
	"context"

	"github.com/MKhiriev/go-crm-front/internal/utils"
)

func contextWithUsername(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, utils.UsernameCtxKey, name)
}
