package direction

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "direction")
