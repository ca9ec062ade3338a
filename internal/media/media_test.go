package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder запоминает запрошенные моменты и отдает однотонный кадр
type fakeDecoder struct {
	mu        sync.Mutex
	duration  time.Duration
	seeks     []time.Duration
	block     bool
	frameErr  error
	frameSize image.Point
}

func (d *fakeDecoder) Duration(_ context.Context, _ string) (time.Duration, error) {
	return d.duration, nil
}

func (d *fakeDecoder) FrameAt(ctx context.Context, _ string, at time.Duration) (image.Image, error) {
	d.mu.Lock()
	d.seeks = append(d.seeks, at)
	d.mu.Unlock()

	if d.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if d.frameErr != nil {
		return nil, d.frameErr
	}
	img := image.NewRGBA(image.Rect(0, 0, d.frameSize.X, d.frameSize.Y))
	for x := 0; x < d.frameSize.X; x++ {
		for y := 0; y < d.frameSize.Y; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	return img, nil
}

// mp4Header - минимальный заголовок ftyp, по которому определяется video/mp4
var mp4Header = []byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2")

func newTestPreprocessor(t *testing.T, decoder VideoDecoder, frames int, timeout time.Duration) *Preprocessor {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	p := NewPreprocessor(decoder, frames, timeout, logger)
	p.tempDir = t.TempDir()
	return p
}

func pngBytes(t *testing.T, w, h int) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func assertTempDirEmpty(t *testing.T, p *Preprocessor) {
	entries, err := os.ReadDir(p.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary media files must be removed")
}

func TestSampleTimestamps(t *testing.T) {
	duration := 8 * time.Second
	timestamps := SampleTimestamps(duration, 3)

	require.Len(t, timestamps, 3)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}, timestamps)

	for i := 1; i < len(timestamps); i++ {
		assert.Greater(t, timestamps[i], timestamps[i-1])
	}

	assert.Nil(t, SampleTimestamps(duration, 0))
}

func TestSampleTimestamps_Property(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10} {
		for _, d := range []time.Duration{time.Second, 37 * time.Second, 90 * time.Minute} {
			timestamps := SampleTimestamps(d, n)
			require.Len(t, timestamps, n)
			interval := d / time.Duration(n+1)
			for i, ts := range timestamps {
				assert.Equal(t, interval*time.Duration(i+1), ts)
				assert.Less(t, ts, d)
			}
		}
	}
}

func TestProcess_Image(t *testing.T) {
	decoder := &fakeDecoder{}
	p := newTestPreprocessor(t, decoder, 3, time.Second)
	data := pngBytes(t, 10, 10)

	frames, err := p.Process(context.Background(), bytes.NewReader(data), "pothole.png")

	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "image/png", frames[0].MIMEType)
	assert.Equal(t, data, frames[0].Data)
	assert.Empty(t, decoder.seeks)
	assertTempDirEmpty(t, p)
}

func TestProcess_Video(t *testing.T) {
	decoder := &fakeDecoder{duration: 12 * time.Second, frameSize: image.Pt(200, 100)}
	p := newTestPreprocessor(t, decoder, 3, time.Second)

	frames, err := p.Process(context.Background(), bytes.NewReader(mp4Header), "flood.mp4")

	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.Equal(t, []time.Duration{3 * time.Second, 6 * time.Second, 9 * time.Second}, decoder.seeks)

	for _, frame := range frames {
		assert.Equal(t, "image/jpeg", frame.MIMEType)
		img, err := imaging.Decode(bytes.NewReader(frame.Data))
		require.NoError(t, err)
		assert.Equal(t, 100, img.Bounds().Dx())
		assert.Equal(t, 50, img.Bounds().Dy())
	}
	assertTempDirEmpty(t, p)
}

func TestProcess_VideoZeroDuration(t *testing.T) {
	decoder := &fakeDecoder{duration: 0}
	p := newTestPreprocessor(t, decoder, 3, time.Second)

	_, err := p.Process(context.Background(), bytes.NewReader(mp4Header), "empty.mp4")

	require.ErrorIs(t, err, ErrUnseekableMedia)
	assert.Empty(t, decoder.seeks)
	assertTempDirEmpty(t, p)
}

func TestProcess_VideoSeekTimeout(t *testing.T) {
	decoder := &fakeDecoder{duration: 4 * time.Second, block: true}
	p := newTestPreprocessor(t, decoder, 3, 20*time.Millisecond)

	_, err := p.Process(context.Background(), bytes.NewReader(mp4Header), "stuck.mp4")

	require.ErrorIs(t, err, ErrSeekTimeout)
	assert.Len(t, decoder.seeks, 1)
	assertTempDirEmpty(t, p)
}

func TestProcess_VideoDecodeError(t *testing.T) {
	decodeErr := errors.New("corrupt stream")
	decoder := &fakeDecoder{duration: 4 * time.Second, frameErr: decodeErr}
	p := newTestPreprocessor(t, decoder, 2, time.Second)

	_, err := p.Process(context.Background(), bytes.NewReader(mp4Header), "broken.mp4")

	require.ErrorIs(t, err, decodeErr)
	assert.NotErrorIs(t, err, ErrSeekTimeout)
	assertTempDirEmpty(t, p)
}

func TestProcess_Unsupported(t *testing.T) {
	p := newTestPreprocessor(t, &fakeDecoder{}, 3, time.Second)

	_, err := p.Process(context.Background(), bytes.NewBufferString("just some notes"), "notes.txt")

	require.ErrorIs(t, err, ErrUnsupportedMedia)
	assert.ErrorContains(t, err, "unsupported file type")
	assertTempDirEmpty(t, p)
}

func TestProcessImage_RejectsVideo(t *testing.T) {
	p := newTestPreprocessor(t, &fakeDecoder{}, 3, time.Second)

	_, err := p.ProcessImage(context.Background(), bytes.NewReader(mp4Header), "satellite.mp4")

	require.ErrorIs(t, err, ErrImageRequired)
	assertTempDirEmpty(t, p)
}

func TestProcessImage_Success(t *testing.T) {
	p := newTestPreprocessor(t, &fakeDecoder{}, 3, time.Second)
	data := pngBytes(t, 4, 4)

	frame, err := p.ProcessImage(context.Background(), bytes.NewReader(data), "satellite.png")

	require.NoError(t, err)
	assert.Equal(t, "image/png", frame.MIMEType)
	assert.Equal(t, data, frame.Data)
}

func TestEncodeFrame_TinyImage(t *testing.T) {
	data, err := EncodeFrame(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(1, 1), img.Bounds().Size())
}
