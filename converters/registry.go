package converters

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/darianmavgo/mkinsert/converters/common"
)

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]common.Driver)
)

// Register makes a product source available under name, the value DriverFor
// returns for its file extensions. Registering a nil source or the same name
// twice panics.
func Register(name string, driver common.Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("converters: product source " + name + " is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("converters: product source " + name + " registered twice")
	}
	drivers[name] = driver
}

// Open returns the header-then-records reader that the named product source
// builds over the input file.
func Open(driverName string, source io.Reader, config *common.ConversionConfig) (common.RowReader, error) {
	driversMu.RLock()
	driver, ok := drivers[driverName]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("converters: no product source registered as %q (is converters/all imported?)", driverName)
	}
	return driver.Open(source, config)
}

// Drivers lists the registered product sources in name order.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	list := make([]string, 0, len(drivers))
	for name := range drivers {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
