package renderer

// Texture coordinates are a planar projection of the normalized position,
// and the face normal comes from screen-space derivatives since OBJ
// normals are not read.
const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uTransformation;
uniform mat4 uView;
uniform mat4 uProjection;

out vec2 vUV;
out vec3 vViewPos;

void main() {
	vec4 fitted = uModel * vec4(aPos, 1.0);
	vUV = fitted.xy * 0.5 + 0.5;
	vec4 viewPos = uView * uTransformation * fitted;
	vViewPos = viewPos.xyz;
	gl_Position = uProjection * viewPos;
}
`

const fragmentShader = `
#version 410 core

in vec2 vUV;
in vec3 vViewPos;

uniform sampler2D uTextureA;
uniform sampler2D uTextureB;
uniform float uBlend;

out vec4 FragColor;

void main() {
	vec3 normal = normalize(cross(dFdx(vViewPos), dFdy(vViewPos)));
	float light = 0.35 + 0.65 * abs(normal.z);
	vec4 texel = mix(texture(uTextureB, vUV), texture(uTextureA, vUV), uBlend);
	FragColor = vec4(texel.rgb * light, texel.a);
}
`
