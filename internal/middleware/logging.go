package middleware

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// NodesLocal is the fiber local under which handlers store the number of searched nodes.
const NodesLocal = "nodes"

// Logging middleware that logs route, status code, response time and searched nodes to output.
func Logging(output io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} | ${path} | ${nodes}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     output,
		CustomTags: map[string]logger.LogFunc{
			"latency": func(output logger.Buffer, _ *fiber.Ctx, data *logger.Data, _ string) (int, error) {
				latency := float64(data.Stop.Sub(data.Start).Nanoseconds()) / float64(time.Millisecond)
				return fmt.Fprintf(output, "%6.1fms", latency)
			},
			"nodes": func(output logger.Buffer, c *fiber.Ctx, _ *logger.Data, _ string) (int, error) {
				nodes, ok := c.Locals(NodesLocal).(uint64)
				if !ok {
					return output.WriteString("-")
				}
				return fmt.Fprintf(output, "%d nodes", nodes)
			},
		},
	})
}
