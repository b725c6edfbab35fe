package biz

import (
	"go.uber.org/fx"
)

var Module = fx.Module("biz",
	fx.Provide(NewObjectService),
	fx.Invoke(RegisterClasses),
)
