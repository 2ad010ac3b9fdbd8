package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tavernsheet/backend/pkg/errorx"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

var errMethodNotSupported = errorx.New(errorx.BadRequest, "Not supported method")

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

type rawResponse interface {
	RawInfo() (mime, fileName string, data []byte)
}

func handleResponse() CloserFunc {
	return func(ctx context.Context) {
		err := func() error {
			if err := xcontext.GetError(ctx); err != nil {
				return err
			}

			if resp := xcontext.GetResponse(ctx); resp != nil {
				if raw, ok := resp.(rawResponse); ok {
					return writeRaw(xcontext.HTTPWriter(ctx), raw)
				}

				if err := WriteJson(xcontext.HTTPWriter(ctx), newResponse(resp)); err != nil {
					xcontext.Logger(ctx).Errorf("cannot write the response: %v", err)
					return errorx.New(errorx.BadResponse, "Cannot write the response")
				}
			}

			return nil
		}()

		if err != nil {
			if err := WriteJson(xcontext.HTTPWriter(ctx), newErrorResponse(err)); err != nil {
				xcontext.Logger(ctx).Errorf("cannot write the response: %v", err)
			}
		}
	}
}

func writeRaw(w http.ResponseWriter, raw rawResponse) error {
	mime, fileName, data := raw.RawInfo()
	w.Header().Set("Content-Type", mime)
	if fileName != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	}

	if _, err := w.Write(data); err != nil {
		return err
	}

	return nil
}

func WriteJson(w http.ResponseWriter, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
