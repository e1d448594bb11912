package cluster

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
)

// SendTask manda una tarea de clasificación a un nodo de modelo por TCP
// (JSON por línea) y espera su respuesta. El deadline viene del contexto.
func SendTask(ctx context.Context, addr string, task *ClassifyTask) (*ClassifyResponse, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	enc := json.NewEncoder(conn)
	if err := enc.Encode(task); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bufio.NewReader(conn))
	var resp ClassifyResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
